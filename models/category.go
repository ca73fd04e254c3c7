package models

type Category struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	ProductCount  int           `json:"product_count"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Subcategory's ParentCategoryID must reference an existing Category for the
// filter sidebar to render it.
type Subcategory struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	ProductCount     int    `json:"product_count"`
	ParentCategoryID string `json:"parent_category_id,omitempty"`
}
