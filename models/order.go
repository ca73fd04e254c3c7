package models

import "time"

type Order struct {
	ID            int         `json:"id"`
	OrderNumber   string      `json:"order_number"`
	FullName      string      `json:"full_name"`
	Email         string      `json:"email"`
	Phone         *string     `json:"phone,omitempty"`
	Address       *string     `json:"address,omitempty"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	Notes         *string     `json:"notes,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID           int     `json:"id"`
	OrderID      int     `json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name,omitempty"`
	SKU          string  `json:"sku,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ColorName    *string `json:"color_name,omitempty"`
	MaterialName *string `json:"material_name,omitempty"`
	TipShapeName *string `json:"tip_shape_name,omitempty"`
}
