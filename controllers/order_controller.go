package controllers

import (
	"errors"
	"log"

	"dental-store/models"
	"dental-store/repositories"

	"github.com/gin-gonic/gin"
)

// OrderMailer is the slice of the email service the order endpoint needs.
type OrderMailer interface {
	SendOrderConfirmation(toEmail, orderNumber string, total float64) error
}

type OrderController struct {
	orderRepo *repositories.OrderRepository
	mailer    OrderMailer
}

func NewOrderController(orderRepo *repositories.OrderRepository, mailer OrderMailer) *OrderController {
	return &OrderController{orderRepo: orderRepo, mailer: mailer}
}

// CreateOrder godoc
// @Summary Create order
// @Description Check stock and create the order with its items; the id and order number are server-assigned
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid order request", Error: err.Error()})
		return
	}

	order, err := ctrl.orderRepo.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		log.Printf("Failed to create order: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to create order"})
		return
	}

	if ctrl.mailer != nil {
		if err := ctrl.mailer.SendOrderConfirmation(order.Email, order.OrderNumber, order.TotalAmount); err != nil {
			log.Printf("Failed to send order confirmation: %v", err)
		}
	}

	c.JSON(201, models.Response{Success: true, Message: "Order created successfully", Data: order})
}
