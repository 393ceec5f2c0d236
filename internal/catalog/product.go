package catalog

// Collection is the document store collection holding catalog products.
const Collection = "product"

// defaultCategory stands in for a missing category in the category listing.
// Product filtering compares the raw field, so an uncategorized record never
// matches a non-empty category filter.
const defaultCategory = "Misc"

type Product struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
	Image       string  `json:"image,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

func categoryOrDefault(p Product) string {
	if p.Category == "" {
		return defaultCategory
	}
	return p.Category
}

// sampleProducts is the fixed demonstration catalog. It is served whenever
// the document store is absent or failing, and it is the payload the Seeder
// writes. Sample records never carry an id; only persisted documents do.
var sampleProducts = []Product{
	{
		Title:       "Wireless Noise Cancelling Headphones",
		Description: "Over-ear Bluetooth headphones with 30h battery and ANC.",
		Price:       129.99,
		Category:    "Electronics",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1518443885661-7a08f0f64f32?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.6,
	},
	{
		Title:       "Stainless Steel Water Bottle",
		Description: "Insulated 32oz bottle keeps drinks cold for 24h.",
		Price:       24.95,
		Category:    "Home",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1517705008128-361805f42e86?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.4,
	},
	{
		Title:       "Ergonomic Office Chair",
		Description: "Adjustable lumbar support, breathable mesh back.",
		Price:       199.0,
		Category:    "Furniture",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1582582429416-cfecfc0a0bdf?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.3,
	},
	{
		Title:       "4K UHD Smart TV 55\"",
		Description: "Ultra HD, HDR, built-in streaming apps.",
		Price:       429.0,
		Category:    "Electronics",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1587300003388-59208cc962cb?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.5,
	},
	{
		Title:       "Non-Stick Cookware Set (10 pcs)",
		Description: "Durable, PFOA-free non-stick with glass lids.",
		Price:       89.99,
		Category:    "Kitchen",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.2,
	},
	{
		Title:       "Running Shoes",
		Description: "Lightweight, breathable, everyday trainers.",
		Price:       59.99,
		Category:    "Fashion",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.1,
	},
}

// SampleCatalog returns a fresh copy of the demonstration catalog.
func SampleCatalog() []Product {
	out := make([]Product, len(sampleProducts))
	copy(out, sampleProducts)
	return out
}
