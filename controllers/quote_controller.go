package controllers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"dental-store/config"
	"dental-store/models"
	"dental-store/repositories"

	"github.com/gin-gonic/gin"
)

// QuoteMailer is the slice of the email service the quote endpoints need.
type QuoteMailer interface {
	SendQuoteNotification(supplierEmail string, quote *models.Quote) error
	SendQuoteAck(quote *models.Quote) error
}

// QuoteStore abstracts quote persistence for the handlers.
type QuoteStore interface {
	CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error)
	ListQuotes(ctx context.Context, status string, page, limit int) ([]models.Quote, int, error)
	UpdateStatus(ctx context.Context, id int, status string) (*models.Quote, error)
}

type QuoteController struct {
	store  QuoteStore
	mailer QuoteMailer
}

func NewQuoteController(store QuoteStore, mailer QuoteMailer) *QuoteController {
	return &QuoteController{store: store, mailer: mailer}
}

// SubmitQuote godoc
// @Summary Submit a quote request
// @Description Persists the quote request and notifies the supplier and the customer by email
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body models.QuoteRequest true "Quote Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/quote [post]
func (ctrl *QuoteController) SubmitQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid quote request", Error: err.Error()})
		return
	}

	if strings.TrimSpace(req.Customer.Email) == "" {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Customer email is required"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Quote must contain at least one item"})
		return
	}

	quote, err := ctrl.store.CreateQuote(c.Request.Context(), req)
	if err != nil {
		log.Printf("Failed to create quote: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to submit quote request"})
		return
	}

	if ctrl.mailer == nil {
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Email service unavailable"})
		return
	}

	if err := ctrl.mailer.SendQuoteNotification(config.AppConfig.SupplierEmail, quote); err != nil {
		log.Printf("Failed to send quote notification: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to submit quote request"})
		return
	}
	if err := ctrl.mailer.SendQuoteAck(quote); err != nil {
		log.Printf("Failed to send quote acknowledgement: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to submit quote request"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Quote request " + quote.QuoteNumber + " submitted successfully",
	})
}

// GetAllQuotes godoc
// @Summary List quote requests
// @Description Get paginated quote requests, optionally filtered by status (Admin)
// @Tags Admin - Quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/quotes [get]
func (ctrl *QuoteController) GetAllQuotes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := strings.TrimSpace(c.Query("status"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	quotes, total, err := ctrl.store.ListQuotes(c.Request.Context(), status, page, limit)
	if err != nil {
		log.Printf("Failed to list quotes: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to retrieve quotes"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Quotes retrieved",
		Data:    quotes,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// UpdateQuoteStatus godoc
// @Summary Update quote status
// @Description Move a quote along submitted -> reviewed -> quoted -> accepted/rejected (Admin)
// @Tags Admin - Quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Quote ID"
// @Param request body models.UpdateQuoteStatusRequest true "Status Update"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/quotes/{id}/status [patch]
func (ctrl *QuoteController) UpdateQuoteStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid quote id"})
		return
	}

	var req models.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid status", Error: err.Error()})
		return
	}

	quote, err := ctrl.store.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidStatusTransition) {
			c.JSON(400, models.ErrorResponse{Success: false, Message: err.Error()})
			return
		}
		log.Printf("Failed to update quote status: %v", err)
		c.JSON(500, models.ErrorResponse{Success: false, Message: "Failed to update quote status"})
		return
	}

	c.JSON(200, models.Response{Success: true, Message: "Quote status updated", Data: quote})
}
