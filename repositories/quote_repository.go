package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dental-store/models"

	"github.com/google/uuid"
)

var ErrInvalidStatusTransition = errors.New("invalid quote status transition")

type QuoteRepository struct{}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

func generateQuoteNumber() string {
	return "QR-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateQuote persists the quote and its items in one transaction and
// assigns the quote number and submitted status.
func (r *QuoteRepository) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	quote := &models.Quote{
		QuoteNumber:     generateQuoteNumber(),
		Customer:        req.Customer,
		ShippingAddress: req.ShippingAddress,
		Status:          models.QuoteStatusSubmitted,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO quotes (quote_number, customer_name, customer_email, customer_phone, customer_company,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country, status, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING id`,
		quote.QuoteNumber,
		quote.Customer.FullName, quote.Customer.Email, quote.Customer.Phone, quote.Customer.Company,
		quote.ShippingAddress.Street, quote.ShippingAddress.City, quote.ShippingAddress.State,
		quote.ShippingAddress.PostalCode, quote.ShippingAddress.Country,
		quote.Status, quote.CreatedAt, quote.UpdatedAt).Scan(&quote.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quote: %w", err)
	}

	for _, item := range req.Items {
		var itemID int
		err = tx.QueryRow(ctx,
			`INSERT INTO quote_items (quote_id, product_name, sku, quantity, color_name, material_name, tip_shape_name)
			 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
			quote.ID, item.ProductName, item.SKU, item.Quantity,
			item.ColorName, item.MaterialName, item.TipShapeName).Scan(&itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert quote item: %w", err)
		}
		item.ID = itemID
		item.QuoteID = quote.ID
		quote.Items = append(quote.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit quote: %w", err)
	}

	return quote, nil
}

func (r *QuoteRepository) GetQuoteByID(ctx context.Context, id int) (*models.Quote, error) {
	var q models.Quote
	err := models.DB.QueryRow(ctx,
		`SELECT id, quote_number, customer_name, customer_email, customer_phone, customer_company,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country, status, created_at, updated_at
		 FROM quotes WHERE id=$1`, id).Scan(
		&q.ID, &q.QuoteNumber,
		&q.Customer.FullName, &q.Customer.Email, &q.Customer.Phone, &q.Customer.Company,
		&q.ShippingAddress.Street, &q.ShippingAddress.City, &q.ShippingAddress.State,
		&q.ShippingAddress.PostalCode, &q.ShippingAddress.Country,
		&q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("quote not found: %w", err)
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, quote_id, product_name, sku, quantity, color_name, material_name, tip_shape_name
		 FROM quote_items WHERE quote_id=$1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.QuoteItem
		if err := rows.Scan(&item.ID, &item.QuoteID, &item.ProductName, &item.SKU,
			&item.Quantity, &item.ColorName, &item.MaterialName, &item.TipShapeName); err != nil {
			return nil, fmt.Errorf("failed to scan quote item: %w", err)
		}
		q.Items = append(q.Items, item)
	}

	return &q, nil
}

// ListQuotes returns one page of quotes, optionally filtered by status.
func (r *QuoteRepository) ListQuotes(ctx context.Context, status string, page, limit int) ([]models.Quote, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	countQuery := "SELECT COUNT(*) FROM quotes"
	listQuery := `SELECT id, quote_number, customer_name, customer_email, customer_phone, customer_company,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country, status, created_at, updated_at
		 FROM quotes`
	args := []interface{}{}

	if status != "" {
		countQuery += " WHERE status=$1"
		listQuery += " WHERE status=$1"
		args = append(args, status)
	}

	var total int
	if err := models.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotes: %w", err)
	}

	listQuery += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	quotes := []models.Quote{}
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.QuoteNumber,
			&q.Customer.FullName, &q.Customer.Email, &q.Customer.Phone, &q.Customer.Company,
			&q.ShippingAddress.Street, &q.ShippingAddress.City, &q.ShippingAddress.State,
			&q.ShippingAddress.PostalCode, &q.ShippingAddress.Country,
			&q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}

	return quotes, total, nil
}

// UpdateStatus moves a quote along submitted -> reviewed -> quoted ->
// accepted/rejected. Any other move returns ErrInvalidStatusTransition.
func (r *QuoteRepository) UpdateStatus(ctx context.Context, id int, status string) (*models.Quote, error) {
	quote, err := r.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionQuoteStatus(quote.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, quote.Status, status)
	}

	_, err = models.DB.Exec(ctx,
		"UPDATE quotes SET status=$1, updated_at=$2 WHERE id=$3",
		status, time.Now(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	quote.Status = status
	return quote, nil
}
