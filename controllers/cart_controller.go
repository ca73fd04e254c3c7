package controllers

import (
	"context"
	"log"

	"dental-store/models"
	"dental-store/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookie = "cart_session"

// ProductFinder is the catalog lookup the cart needs to snapshot a product's
// name, SKU, and price into a line item.
type ProductFinder interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

type CartController struct {
	cart    *services.CartService
	catalog ProductFinder
}

func NewCartController(cart *services.CartService, catalog ProductFinder) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

// sessionID reads the cart session cookie, issuing one on first touch.
func (ctrl *CartController) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(cartSessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartSessionCookie, id, 60*60*24*30, "/", "", false, true)
	return id
}

// GetCart godoc
// @Summary Get cart
// @Description Get the session's cart with derived total and item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	state := ctrl.cart.Get(ctrl.sessionID(c))
	c.JSON(200, models.Response{Success: true, Message: "Cart retrieved", Data: state})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Merge the quantity into an existing line with the same variant selection, or append a new line
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Cart Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid cart item", Error: err.Error()})
		return
	}

	product, err := ctrl.catalog.ProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		log.Printf("Failed to look up product %s: %v", req.ProductID, err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to add item"})
		return
	}
	if product == nil {
		c.JSON(404, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	state, message := ctrl.cart.Add(ctrl.sessionID(c), *product, quantity, req.ColorID, req.MaterialID, req.TipShapeID)
	c.JSON(200, models.Response{Success: true, Message: message, Data: state})
}

// UpdateItem godoc
// @Summary Update line quantity
// @Description Set the quantity on every line matching the product id; zero removes the product
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity Update"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid quantity", Error: err.Error()})
		return
	}

	state := ctrl.cart.UpdateQuantity(ctrl.sessionID(c), c.Param("productId"), req.Quantity)
	c.JSON(200, models.Response{Success: true, Message: "Cart updated", Data: state})
}

// RemoveItem godoc
// @Summary Remove product from cart
// @Description Remove every line for the product, regardless of variant selection
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /api/cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	state, message := ctrl.cart.Remove(ctrl.sessionID(c), c.Param("productId"))
	c.JSON(200, models.Response{Success: true, Message: message, Data: state})
}

// ClearCart godoc
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	state, message := ctrl.cart.Clear(ctrl.sessionID(c))
	c.JSON(200, models.Response{Success: true, Message: message, Data: state})
}

// SetOpen godoc
// @Summary Toggle cart drawer
// @Description Set the transient drawer visibility flag; items and totals are untouched
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.SetCartOpenRequest true "Drawer State"
// @Success 200 {object} models.Response
// @Router /api/cart/open [patch]
func (ctrl *CartController) SetOpen(c *gin.Context) {
	var req models.SetCartOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	state := ctrl.cart.SetOpen(ctrl.sessionID(c), req.Open)
	c.JSON(200, models.Response{Success: true, Message: "Cart updated", Data: state})
}
