package models

import "time"

const (
	QuoteStatusSubmitted = "submitted"
	QuoteStatusReviewed  = "reviewed"
	QuoteStatusQuoted    = "quoted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
)

var quoteTransitions = map[string][]string{
	QuoteStatusSubmitted: {QuoteStatusReviewed},
	QuoteStatusReviewed:  {QuoteStatusQuoted},
	QuoteStatusQuoted:    {QuoteStatusAccepted, QuoteStatusRejected},
}

// CanTransitionQuoteStatus reports whether a quote may move from one status
// to another. Accepted and rejected are terminal.
func CanTransitionQuoteStatus(from, to string) bool {
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type QuoteCustomer struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
}

type ShippingAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type QuoteItem struct {
	ID           int    `json:"id,omitempty"`
	QuoteID      int    `json:"quote_id,omitempty"`
	ProductName  string `json:"product_name"`
	SKU          string `json:"sku,omitempty"`
	Quantity     int    `json:"quantity"`
	ColorName    string `json:"color_name,omitempty"`
	MaterialName string `json:"material_name,omitempty"`
	TipShapeName string `json:"tip_shape_name,omitempty"`
}

// Quote is a submitted quote request. The client flow never mutates a quote
// after creation; status transitions happen on the admin surface only.
type Quote struct {
	ID              int             `json:"id"`
	QuoteNumber     string          `json:"quote_number"`
	Customer        QuoteCustomer   `json:"customer"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Items           []QuoteItem     `json:"items"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
