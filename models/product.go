package models

// VariantOption is a selectable product option (color, material, tip shape)
// normalized to a canonical id + display name.
type VariantOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is the flat catalog shape consumed by the filter engine and the
// HTTP handlers. Its ID is the stable join key for cart line items.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug,omitempty"`
	Description     string          `json:"description,omitempty"`
	Price           *float64        `json:"price,omitempty"`
	Images          []string        `json:"images,omitempty"`
	CategoryID      string          `json:"category_id,omitempty"`
	CategorySlug    string          `json:"category_slug,omitempty"`
	SubcategoryID   string          `json:"subcategory_id,omitempty"`
	SubcategorySlug string          `json:"subcategory_slug,omitempty"`
	Colors          []VariantOption `json:"colors,omitempty"`
	Materials       []VariantOption `json:"materials,omitempty"`
	TipShapes       []VariantOption `json:"tip_shapes,omitempty"`
	SKU             string          `json:"sku,omitempty"`
	ProductCode     string          `json:"product_code,omitempty"`
	Featured        bool            `json:"featured"`
	Tags            []string        `json:"tags,omitempty"`
	Rating          float64         `json:"rating"`
}
