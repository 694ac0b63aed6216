// Package store holds the repositories for the four stored entities. Each
// method takes the database handle explicitly so tests can pass their own.
package store

import (
	"database/sql"
	"evently-catalog-backend/model"

	sq "github.com/Masterminds/squirrel"
)

const (
	eventTable    = "Event"
	userTable     = "User"
	categoryTable = "Category"
	orderTable    = "Orders"
)

var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// eventRow is an Event with its left-joined category and organizer columns.
type eventRow struct {
	model.Event
	CatID    sql.NullString `db:"cat_id"`
	CatName  sql.NullString `db:"cat_name"`
	OrgID    sql.NullString `db:"org_id"`
	OrgFirst sql.NullString `db:"org_first"`
	OrgLast  sql.NullString `db:"org_last"`
}

// withDetails turns a raw joined row into the projection listing views
// consume. A null category becomes {name: ""} and a null organizer becomes
// {id: "", first_name: "", last_name: ""} so callers never see an absent
// relation. Every listing goes through this one helper.
func (r eventRow) withDetails() model.EventWithDetails {
	e := model.EventWithDetails{
		Event:     r.Event,
		Category:  model.CategoryRef{Name: ""},
		Organizer: model.OrganizerRef{},
	}

	if r.CatID.Valid {
		e.Category = model.CategoryRef{ID: r.CatID.String, Name: r.CatName.String}
	}

	if r.OrgID.Valid {
		e.Organizer = model.OrganizerRef{
			ID:        r.OrgID.String,
			FirstName: r.OrgFirst.String,
			LastName:  r.OrgLast.String,
		}
	}

	return e
}

var eventJoinColumns = []string{
	"e.event_id", "e.title", "e.description", "e.location", "e.image_url",
	"e.start_date_time", "e.end_date_time", "e.price", "e.is_free", "e.url",
	"e.category_id", "e.organizer_id", "e.created_at",
	"c.category_id AS cat_id", "c.name AS cat_name",
	"u.user_id AS org_id", "u.first_name AS org_first", "u.last_name AS org_last",
}

func eventJoinSelect() sq.SelectBuilder {
	return sb.Select(eventJoinColumns...).
		From(eventTable + " e").
		LeftJoin(categoryTable + " c ON c.category_id = e.category_id").
		LeftJoin(userTable + " u ON u.user_id = e.organizer_id")
}
