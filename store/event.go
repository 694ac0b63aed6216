package store

import (
	"context"
	"database/sql"
	"errors"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/logger"
	"evently-catalog-backend/model"
	"evently-catalog-backend/revalidate"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// NewEvent returns the repository for the Event table.
func NewEvent(signal revalidate.Signaler) *Event {
	return &Event{signal: signal}
}

type Event struct {
	signal revalidate.Signaler
}

// Create inserts a new event owned by organizerID. The organizer id embedded
// in the input is ignored so callers cannot create events on someone else's
// behalf.
func (s *Event) Create(ctx context.Context, db *sqlx.DB, event *model.Event, organizerID, path string) (*model.Event, error) {
	exists, err := userExists(ctx, db, organizerID)
	if err != nil {
		return nil, fmt.Errorf("create: error checking organizer: %w", err)
	}

	if !exists {
		return nil, apperror.E(apperror.NotFound, "create: organizer not found: %s", organizerID)
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.OrganizerID = &organizerID
	now := time.Now().UTC()
	event.CreatedAt = &now

	q, args, err := sb.Insert(eventTable).
		Columns("event_id", "title", "description", "location", "image_url",
			"start_date_time", "end_date_time", "price", "is_free", "url",
			"category_id", "organizer_id", "created_at").
		Values(event.EventID, event.Title, event.Description, event.Location, event.ImageURL,
			event.StartDateTime, event.EndDateTime, event.Price, event.IsFree, event.URL,
			event.CategoryID, event.OrganizerID, event.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create: error building insert: %w", err)
	}

	if _, err = db.ExecContext(ctx, q, args...); err != nil {
		return nil, fmt.Errorf("create: unable to insert event: %w", err)
	}

	s.invalidate(ctx, path)

	return event, nil
}

// GetByID returns the event joined with its organizer and category.
func (s *Event) GetByID(ctx context.Context, db *sqlx.DB, eventID string) (*model.EventWithDetails, error) {
	q, args, err := eventJoinSelect().Where(sq.Eq{"e.event_id": eventID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("getByID: error building query: %w", err)
	}

	var row eventRow
	err = db.GetContext(ctx, &row, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.E(apperror.NotFound, "getByID: event not found: %s", eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("getByID: error fetching event: %s: %w", eventID, err)
	}

	details := row.withDetails()
	return &details, nil
}

// Update overwrites the mutable fields of an event. Only the owning
// organizer may update it.
func (s *Event) Update(ctx context.Context, db *sqlx.DB, organizerID string, event *model.Event, path string) (*model.Event, error) {
	exists, err := userExists(ctx, db, organizerID)
	if err != nil {
		return nil, fmt.Errorf("update: error checking organizer: %w", err)
	}

	if !exists {
		return nil, apperror.E(apperror.Unauthorized, "update: organizer not found: %s", organizerID)
	}

	stored, found, err := fetchEvent(ctx, db, event.EventID)
	if err != nil {
		return nil, fmt.Errorf("update: error fetching event: %w", err)
	}

	if !found || stored.OrganizerID == nil || *stored.OrganizerID != organizerID {
		return nil, apperror.E(apperror.Unauthorized, "update: event %s is not owned by %s", event.EventID, organizerID)
	}

	q, args, err := sb.Update(eventTable).
		Set("title", event.Title).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("image_url", event.ImageURL).
		Set("start_date_time", event.StartDateTime).
		Set("end_date_time", event.EndDateTime).
		Set("price", event.Price).
		Set("is_free", event.IsFree).
		Set("url", event.URL).
		Set("category_id", event.CategoryID).
		Where(sq.Eq{"event_id": event.EventID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update: error building update: %w", err)
	}

	if _, err = db.ExecContext(ctx, q, args...); err != nil {
		return nil, fmt.Errorf("update: unable to update event: %s: %w", event.EventID, err)
	}

	updated, _, err := fetchEvent(ctx, db, event.EventID)
	if err != nil {
		return nil, fmt.Errorf("update: error fetching updated event: %w", err)
	}

	s.invalidate(ctx, path)

	return updated, nil
}

// Delete removes an event. Deleting an absent event is a no-op and does not
// signal revalidation.
func (s *Event) Delete(ctx context.Context, db *sqlx.DB, eventID, path string) error {
	q, args, err := sb.Delete(eventTable).Where(sq.Eq{"event_id": eventID}).ToSql()
	if err != nil {
		return fmt.Errorf("delete: error building delete: %w", err)
	}

	result, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("delete: unable to delete event: %s: %w", eventID, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete: error reading affected rows: %w", err)
	}

	if deleted > 0 {
		s.invalidate(ctx, path)
	}

	return nil
}

// EventFilter narrows a listing. Zero-value fields are not applied.
type EventFilter struct {
	OrganizerID *string
	CategoryID  *string
	ExcludeID   *string
	Limit       uint64
	Offset      uint64
}

// List returns at most Limit projections ordered newest first, plus the
// total count matching the filter.
func (s *Event) List(ctx context.Context, db *sqlx.DB, f EventFilter) ([]model.EventWithDetails, int64, error) {
	conds := sq.And{}
	if f.OrganizerID != nil {
		conds = append(conds, sq.Eq{"e.organizer_id": *f.OrganizerID})
	}
	if f.CategoryID != nil {
		conds = append(conds, sq.Eq{"e.category_id": *f.CategoryID})
	}
	if f.ExcludeID != nil {
		conds = append(conds, sq.NotEq{"e.event_id": *f.ExcludeID})
	}

	builder := eventJoinSelect().
		OrderBy("e.created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset)
	if len(conds) > 0 {
		builder = builder.Where(conds)
	}

	q, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("list: error building query: %w", err)
	}

	var rows []eventRow
	if err = db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, fmt.Errorf("list: error querying events: %w", err)
	}

	countBuilder := sb.Select("COUNT(*)").From(eventTable + " e")
	if len(conds) > 0 {
		countBuilder = countBuilder.Where(conds)
	}

	q, args, err = countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("list: error building count: %w", err)
	}

	var total int64
	if err = db.GetContext(ctx, &total, q, args...); err != nil {
		return nil, 0, fmt.Errorf("list: error counting events: %w", err)
	}

	events := make([]model.EventWithDetails, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.withDetails())
	}

	return events, total, nil
}

func (s *Event) invalidate(ctx context.Context, path string) {
	if path == "" {
		return
	}

	if err := s.signal.Invalidate(ctx, path); err != nil {
		logger.Errorf(ctx, "invalidate: error signaling stale path %q: %+v", path, err)
	}
}

func fetchEvent(ctx context.Context, db *sqlx.DB, eventID string) (*model.Event, bool, error) {
	q, args, err := sb.Select("event_id", "title", "description", "location", "image_url",
		"start_date_time", "end_date_time", "price", "is_free", "url",
		"category_id", "organizer_id", "created_at").
		From(eventTable).
		Where(sq.Eq{"event_id": eventID}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("fetchEvent: error building query: %w", err)
	}

	var event model.Event
	err = db.GetContext(ctx, &event, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetchEvent: error scanning event: %w", err)
	}

	return &event, true, nil
}
