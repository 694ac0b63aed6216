package store

import (
	"context"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/model"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func NewOrder() *Order {
	return &Order{}
}

type Order struct{}

func (s *Order) Create(ctx context.Context, db *sqlx.DB, order *model.Order) (*model.Order, error) {
	if order.BuyerID != nil {
		exists, err := userExists(ctx, db, *order.BuyerID)
		if err != nil {
			return nil, fmt.Errorf("create: error checking buyer: %w", err)
		}
		if !exists {
			return nil, apperror.E(apperror.NotFound, "create: buyer not found: %s", *order.BuyerID)
		}
	}

	if order.OrderID == "" {
		order.OrderID = uuid.NewString()
	}
	now := time.Now().UTC()
	order.CreatedAt = &now

	q, args, err := sb.Insert(orderTable).
		Columns("order_id", "event_id", "buyer_id", "total_amount", "created_at").
		Values(order.OrderID, order.EventID, order.BuyerID, order.TotalAmount, order.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create: error building insert: %w", err)
	}

	if _, err = db.ExecContext(ctx, q, args...); err != nil {
		return nil, fmt.Errorf("create: unable to insert order: %w", err)
	}

	return order, nil
}

// ListByBuyer returns the buyer's orders newest first, joined with the event
// title, plus the total count.
func (s *Order) ListByBuyer(ctx context.Context, db *sqlx.DB, buyerID string, limit, offset uint64) ([]model.OrderWithEvent, int64, error) {
	q, args, err := sb.Select("o.order_id", "o.event_id", "o.buyer_id", "o.total_amount", "o.created_at",
		"COALESCE(e.title, '') AS event_title").
		From(orderTable+" o").
		LeftJoin(eventTable+" e ON e.event_id = o.event_id").
		Where(sq.Eq{"o.buyer_id": buyerID}).
		OrderBy("o.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("listByBuyer: error building query: %w", err)
	}

	var orders []model.OrderWithEvent
	if err = db.SelectContext(ctx, &orders, q, args...); err != nil {
		return nil, 0, fmt.Errorf("listByBuyer: error querying orders: %w", err)
	}

	q, args, err = sb.Select("COUNT(*)").
		From(orderTable).
		Where(sq.Eq{"buyer_id": buyerID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("listByBuyer: error building count: %w", err)
	}

	var total int64
	if err = db.GetContext(ctx, &total, q, args...); err != nil {
		return nil, 0, fmt.Errorf("listByBuyer: error counting orders: %w", err)
	}

	return orders, total, nil
}
