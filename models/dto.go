package models

type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Phone    string `json:"phone,omitempty"`
}

type QuoteRequest struct {
	Customer        QuoteCustomer   `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []QuoteItem     `json:"items"`
}

type CreateOrderRequest struct {
	FullName string             `json:"full_name" binding:"required"`
	Email    string             `json:"email" binding:"required,email"`
	Phone    string             `json:"phone"`
	Address  string             `json:"address"`
	Notes    string             `json:"notes"`
	Items    []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductName  string  `json:"product_name"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	Price        float64 `json:"price"`
	ColorName    string  `json:"color_name"`
	MaterialName string  `json:"material_name"`
	TipShapeName string  `json:"tip_shape_name"`
}

type AddCartItemRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	Quantity   int     `json:"quantity"`
	ColorID    *string `json:"color_id"`
	MaterialID *string `json:"material_id"`
	TipShapeID *string `json:"tip_shape_id"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SetCartOpenRequest struct {
	Open bool `json:"open"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted reviewed quoted accepted rejected"`
}

// FilterParams is the query-string contract of GET /api/products. The filtered
// view is a deterministic function of these values, so a URL is shareable.
type FilterParams struct {
	Search        string   `form:"search"`
	MinPrice      *float64 `form:"min_price"`
	MaxPrice      *float64 `form:"max_price"`
	Materials     []string `form:"material"`
	Categories    []string `form:"category"`
	Subcategories []string `form:"subcategory"`
	MinRating     float64  `form:"min_rating"`
	Sort          string   `form:"sort"`
	Page          int      `form:"page"`
}
