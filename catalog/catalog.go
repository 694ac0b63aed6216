// Package catalog produces the paginated listing views over events and
// orders. Listing operations never surface storage errors: they log them and
// hand back an empty page, so "no results", "zero rows" and "store down"
// render identically. The log line is the only place the difference shows.
package catalog

import (
	"context"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/model"
	"evently-catalog-backend/store"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	// DefaultLimit is the page size used when callers do not pass one.
	DefaultLimit = 6

	// RelatedLimit is the default page size for related-event listings.
	RelatedLimit = 3
)

func New(events *store.Event, users *store.User, orders *store.Order) *Service {
	return &Service{events: events, users: users, orders: orders}
}

type Service struct {
	events *store.Event
	users  *store.User
	orders *store.Order
}

// GetAllEvents lists the whole catalog newest first. The query and category
// arguments are accepted but not applied to the filter; the listing is
// unfiltered.
func (c *Service) GetAllEvents(ctx context.Context, db *sqlx.DB, query, category string, limit, page int64) model.EventPage {
	limit, offset := pageWindow(limit, page)

	events, total, err := c.events.List(ctx, db, store.EventFilter{
		Limit:  uint64(limit),
		Offset: uint64(offset),
	})
	if err != nil {
		logger.Errorf(ctx, "getAllEvents: error listing events: %+v", err)
		return emptyPage()
	}

	return model.EventPage{Data: events, TotalPages: totalPages(total, limit)}
}

// GetEventsByUser lists the events organized by userID. A missing user is an
// error; storage failures during the listing itself collapse to an empty
// page like every other listing.
func (c *Service) GetEventsByUser(ctx context.Context, db *sqlx.DB, userID string, limit, page int64) (model.EventPage, error) {
	if _, err := c.users.GetByID(ctx, db, userID); err != nil {
		return emptyPage(), fmt.Errorf("getEventsByUser: %w", err)
	}

	limit, offset := pageWindow(limit, page)

	events, total, err := c.events.List(ctx, db, store.EventFilter{
		OrganizerID: &userID,
		Limit:       uint64(limit),
		Offset:      uint64(offset),
	})
	if err != nil {
		logger.Errorf(ctx, "getEventsByUser: error listing events for %s: %+v", userID, err)
		return emptyPage(), nil
	}

	return model.EventPage{Data: events, TotalPages: totalPages(total, limit)}, nil
}

// GetRelatedEventsByCategory lists other events in the same category,
// excluding eventID itself.
func (c *Service) GetRelatedEventsByCategory(ctx context.Context, db *sqlx.DB, categoryID, eventID string, limit, page int64) model.EventPage {
	if limit <= 0 {
		limit = RelatedLimit
	}
	limit, offset := pageWindow(limit, page)

	events, total, err := c.events.List(ctx, db, store.EventFilter{
		CategoryID: &categoryID,
		ExcludeID:  &eventID,
		Limit:      uint64(limit),
		Offset:     uint64(offset),
	})
	if err != nil {
		logger.Errorf(ctx, "getRelatedEventsByCategory: error listing events for category %s: %+v", categoryID, err)
		return emptyPage()
	}

	return model.EventPage{Data: events, TotalPages: totalPages(total, limit)}
}

// GetOrdersByUser lists the orders placed by userID, newest first.
func (c *Service) GetOrdersByUser(ctx context.Context, db *sqlx.DB, userID string, limit, page int64) (model.OrderPage, error) {
	if _, err := c.users.GetByID(ctx, db, userID); err != nil {
		return model.OrderPage{Data: []model.OrderWithEvent{}}, fmt.Errorf("getOrdersByUser: %w", err)
	}

	limit, offset := pageWindow(limit, page)

	orders, total, err := c.orders.ListByBuyer(ctx, db, userID, uint64(limit), uint64(offset))
	if err != nil {
		logger.Errorf(ctx, "getOrdersByUser: error listing orders for %s: %+v", userID, err)
		return model.OrderPage{Data: []model.OrderWithEvent{}}, nil
	}

	if orders == nil {
		orders = []model.OrderWithEvent{}
	}

	return model.OrderPage{Data: orders, TotalPages: totalPages(total, limit)}, nil
}

// pageWindow clamps limit and page to sane values and returns the effective
// limit and offset. Pages below 1 are treated as page 1.
func pageWindow(limit, page int64) (int64, int64) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func totalPages(count, limit int64) int64 {
	if count <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

func emptyPage() model.EventPage {
	return model.EventPage{Data: []model.EventWithDetails{}, TotalPages: 0}
}
