package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dental-store/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateOrder checks stock for every requested item, decrements it, and
// inserts the order plus its items in a single transaction. Products without
// a stock row are quote-based and treated as always available.
func (r *OrderRepository) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range req.Items {
		var stock int
		err := tx.QueryRow(ctx,
			"SELECT stock FROM product_stock WHERE product_id=$1 FOR UPDATE",
			item.ProductID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("failed to check stock for %s: %w", item.ProductID, err)
		}
		if stock < item.Quantity {
			return nil, fmt.Errorf("%w for product %s: have %d, want %d",
				ErrInsufficientStock, item.ProductID, stock, item.Quantity)
		}
		if _, err := tx.Exec(ctx,
			"UPDATE product_stock SET stock = stock - $1 WHERE product_id=$2",
			item.Quantity, item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", item.ProductID, err)
		}
	}

	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}

	order := &models.Order{
		OrderNumber: generateOrderNumber(),
		FullName:    req.FullName,
		Email:       req.Email,
		TotalAmount: total,
		Status:      "pending",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if req.Phone != "" {
		order.Phone = &req.Phone
	}
	if req.Address != "" {
		order.Address = &req.Address
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, full_name, email, phone, address, total_amount, status, notes, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		order.OrderNumber, order.FullName, order.Email, order.Phone, order.Address,
		order.TotalAmount, order.Status, order.Notes, order.CreatedAt, order.UpdatedAt).Scan(&order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range req.Items {
		orderItem := models.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
		if item.ColorName != "" {
			orderItem.ColorName = &item.ColorName
		}
		if item.MaterialName != "" {
			orderItem.MaterialName = &item.MaterialName
		}
		if item.TipShapeName != "" {
			orderItem.TipShapeName = &item.TipShapeName
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, sku, quantity, price, color_name, material_name, tip_shape_name)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
			orderItem.OrderID, orderItem.ProductID, orderItem.ProductName, orderItem.SKU,
			orderItem.Quantity, orderItem.Price,
			orderItem.ColorName, orderItem.MaterialName, orderItem.TipShapeName).Scan(&orderItem.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := models.DB.QueryRow(ctx,
		`SELECT id, order_number, full_name, email, phone, address, total_amount, status, notes, created_at, updated_at
		 FROM orders WHERE id=$1`, id).Scan(
		&o.ID, &o.OrderNumber, &o.FullName, &o.Email, &o.Phone, &o.Address,
		&o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, order_id, product_id, product_name, sku, quantity, price, color_name, material_name, tip_shape_name
		 FROM order_items WHERE order_id=$1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.SKU,
			&item.Quantity, &item.Price, &item.ColorName, &item.MaterialName, &item.TipShapeName); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}

	return &o, nil
}
