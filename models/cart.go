package models

const (
	MinLineQuantity = 1
	MaxLineQuantity = 9999
)

// CartItem is one line in the cart: a product plus a specific combination of
// selected variant options. Two items belong to the same line iff the product
// id and all three selections are pairwise equal.
type CartItem struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	SKU         string   `json:"sku,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Quantity    int      `json:"quantity"`
	ColorID     *string  `json:"color_id,omitempty"`
	MaterialID  *string  `json:"material_id,omitempty"`
	TipShapeID  *string  `json:"tip_shape_id,omitempty"`
}

// SameLine reports whether other is the same cart line as item.
func (item *CartItem) SameLine(other *CartItem) bool {
	return item.ProductID == other.ProductID &&
		equalSelection(item.ColorID, other.ColorID) &&
		equalSelection(item.MaterialID, other.MaterialID) &&
		equalSelection(item.TipShapeID, other.TipShapeID)
}

func equalSelection(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CartState holds the ordered line items plus the derived aggregates. IsOpen
// is the transient drawer flag and is never trusted from persistence.
type CartState struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
	IsOpen    bool       `json:"-"`
}

// Recompute re-derives Total and ItemCount from the current lines. A missing
// price contributes 0 to the total.
func (s *CartState) Recompute() {
	total := 0.0
	count := 0
	for i := range s.Items {
		if s.Items[i].Price != nil {
			total += *s.Items[i].Price * float64(s.Items[i].Quantity)
		}
		count += s.Items[i].Quantity
	}
	s.Total = total
	s.ItemCount = count
}

func ClampQuantity(qty int) int {
	if qty < MinLineQuantity {
		return MinLineQuantity
	}
	if qty > MaxLineQuantity {
		return MaxLineQuantity
	}
	return qty
}
