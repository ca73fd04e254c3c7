package controllers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dental-store/config"
	"dental-store/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuoteStore struct {
	created *models.Quote
}

func (s *stubQuoteStore) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	s.created = &models.Quote{
		ID:              1,
		QuoteNumber:     "QR-TEST0001",
		Customer:        req.Customer,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Status:          models.QuoteStatusSubmitted,
		CreatedAt:       time.Now(),
	}
	return s.created, nil
}

func (s *stubQuoteStore) ListQuotes(ctx context.Context, status string, page, limit int) ([]models.Quote, int, error) {
	return nil, 0, nil
}

func (s *stubQuoteStore) UpdateStatus(ctx context.Context, id int, status string) (*models.Quote, error) {
	return nil, nil
}

type stubQuoteMailer struct {
	supplierNotified int
	customerAcked    int
}

func (s *stubQuoteMailer) SendQuoteNotification(supplierEmail string, quote *models.Quote) error {
	s.supplierNotified++
	return nil
}

func (s *stubQuoteMailer) SendQuoteAck(quote *models.Quote) error {
	s.customerAcked++
	return nil
}

func quoteRouter(store QuoteStore, mailer QuoteMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{SupplierEmail: "quotes@example.com"}

	router := gin.New()
	router.POST("/api/quote", NewQuoteController(store, mailer).SubmitQuote)
	return router
}

func validQuoteRequest() models.QuoteRequest {
	return models.QuoteRequest{
		Customer: models.QuoteCustomer{
			FullName: "Dr. Jane Doe",
			Email:    "jane@clinic.example.com",
		},
		ShippingAddress: models.ShippingAddress{
			Street: "1 Main St",
			City:   "Springfield",
		},
		Items: []models.QuoteItem{
			{ProductName: "Periodontal Scaler", SKU: "PS-100", Quantity: 2, MaterialName: "Stainless Steel"},
		},
	}
}

func TestSubmitQuoteSuccess(t *testing.T) {
	store := &stubQuoteStore{}
	mailer := &stubQuoteMailer{}
	router := quoteRouter(store, mailer)

	w := postJSON(router, "/api/quote", validQuoteRequest())

	assert.Equal(t, 200, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, 1, mailer.supplierNotified)
	assert.Equal(t, 1, mailer.customerAcked)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "QR-TEST0001")
}

func TestSubmitQuoteRequiresEmail(t *testing.T) {
	router := quoteRouter(&stubQuoteStore{}, &stubQuoteMailer{})

	req := validQuoteRequest()
	req.Customer.Email = ""
	w := postJSON(router, "/api/quote", req)

	assert.Equal(t, 400, w.Code)
}

func TestSubmitQuoteRequiresItems(t *testing.T) {
	router := quoteRouter(&stubQuoteStore{}, &stubQuoteMailer{})

	req := validQuoteRequest()
	req.Items = nil
	w := postJSON(router, "/api/quote", req)

	assert.Equal(t, 400, w.Code)
}

func TestQuoteStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.QuoteStatusSubmitted, models.QuoteStatusReviewed, true},
		{models.QuoteStatusReviewed, models.QuoteStatusQuoted, true},
		{models.QuoteStatusQuoted, models.QuoteStatusAccepted, true},
		{models.QuoteStatusQuoted, models.QuoteStatusRejected, true},
		{models.QuoteStatusSubmitted, models.QuoteStatusAccepted, false},
		{models.QuoteStatusAccepted, models.QuoteStatusRejected, false},
		{models.QuoteStatusRejected, models.QuoteStatusSubmitted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, models.CanTransitionQuoteStatus(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
