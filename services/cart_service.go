package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"dental-store/models"

	"github.com/redis/go-redis/v9"
)

// CartService holds one cart per storefront session and applies the four
// reducer actions: add, remove, update-quantity, clear. Totals and item
// counts are always re-derived from the line list, never trusted from a
// caller or from persistence.
type CartService struct {
	mu     sync.Mutex
	carts  map[string]*models.CartState
	redis  *redis.Client
	ttl time.Duration
}

func NewCartService(redisClient *redis.Client) *CartService {
	return &CartService{
		carts:  make(map[string]*models.CartState),
		redis:  redisClient,
		ttl: 30 * 24 * time.Hour,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// persistedCart is the durable blob: the aggregates are stored alongside the
// items but only the items are trusted on restore.
type persistedCart struct {
	Items     []models.CartItem `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// Get returns a snapshot of the session's cart, restoring it from persistence
// on first touch.
func (s *CartService) Get(sessionID string) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getLocked(sessionID)
}

// Add merges the quantity into an existing line with the same (product,
// color, material, tip shape) tuple, or appends a new line. It returns the
// new state together with the confirmation message shown to the shopper.
func (s *CartService) Add(sessionID string, product models.Product, quantity int, colorID, materialID, tipShapeID *string) (models.CartState, string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	item := models.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		Price:       product.Price,
		Quantity:    quantity,
		ColorID:     colorID,
		MaterialID:  materialID,
		TipShapeID:  tipShapeID,
	}
	addLine(state, item)
	state.Recompute()
	s.persistLocked(sessionID, state)

	unit := "item"
	if quantity > 1 {
		unit = "items"
	}
	message := fmt.Sprintf("%s (%d %s) added to your cart", product.Name, quantity, unit)

	return *state, message
}

// Remove deletes every line whose product id matches, regardless of variant
// selection. Keying by product id only is a known limitation: two variant
// lines of the same product cannot be removed independently.
func (s *CartService) Remove(sessionID, productID string) (models.CartState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	kept := state.Items[:0]
	for _, item := range state.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	state.Items = kept
	state.Recompute()
	s.persistLocked(sessionID, state)

	return *state, "Item removed from your cart"
}

// UpdateQuantity sets the quantity on every line matching the product id
// (same id-only keying as Remove). A quantity of zero or less removes the
// product entirely.
func (s *CartService) UpdateQuantity(sessionID, productID string, quantity int) models.CartState {
	if quantity <= 0 {
		state, _ := s.Remove(sessionID, productID)
		return state
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	for i := range state.Items {
		if state.Items[i].ProductID == productID {
			state.Items[i].Quantity = models.ClampQuantity(quantity)
		}
	}
	state.Recompute()
	s.persistLocked(sessionID, state)

	return *state
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) (models.CartState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	state.Items = nil
	state.Recompute()
	s.persistLocked(sessionID, state)

	return *state, "Your cart has been cleared"
}

// SetOpen toggles the transient drawer flag. It never touches the lines or
// the aggregates and is not persisted.
func (s *CartService) SetOpen(sessionID string, open bool) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getLocked(sessionID)
	state.IsOpen = open

	return *state
}

func (s *CartService) getLocked(sessionID string) *models.CartState {
	if state, ok := s.carts[sessionID]; ok {
		return state
	}
	state := s.restore(sessionID)
	s.carts[sessionID] = state
	return state
}

// addLine is the single merge point used by Add and by restore replay.
func addLine(state *models.CartState, item models.CartItem) {
	for i := range state.Items {
		if state.Items[i].SameLine(&item) {
			state.Items[i].Quantity = models.ClampQuantity(state.Items[i].Quantity + item.Quantity)
			return
		}
	}
	item.Quantity = models.ClampQuantity(item.Quantity)
	state.Items = append(state.Items, item)
}

// restore rebuilds a cart from the persisted blob by replaying each item
// through the add path, so totals re-derive from the item prices instead of
// the stored aggregate. A missing or unparseable blob yields an empty cart.
func (s *CartService) restore(sessionID string) *models.CartState {
	state := &models.CartState{}
	if s.redis == nil {
		return state
	}

	raw, err := s.redis.Get(context.Background(), cartKey(sessionID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Failed to read persisted cart %s: %v", sessionID, err)
		}
		return state
	}

	var persisted persistedCart
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		log.Printf("Failed to parse persisted cart %s, starting empty: %v", sessionID, err)
		return state
	}

	for _, item := range persisted.Items {
		addLine(state, item)
	}
	state.Recompute()

	return state
}

func (s *CartService) persistLocked(sessionID string, state *models.CartState) {
	if s.redis == nil {
		return
	}

	blob, err := json.Marshal(persistedCart{
		Items:     state.Items,
		Total:     state.Total,
		ItemCount: state.ItemCount,
	})
	if err != nil {
		log.Printf("Failed to serialize cart %s: %v", sessionID, err)
		return
	}

	if err := s.redis.Set(context.Background(), cartKey(sessionID), blob, s.ttl).Err(); err != nil {
		log.Printf("Failed to persist cart %s: %v", sessionID, err)
	}
}
