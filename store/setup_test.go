package store

import (
	"context"
	"evently-catalog-backend/model"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE User (
	user_id    TEXT PRIMARY KEY,
	auth_id    TEXT,
	first_name TEXT,
	last_name  TEXT,
	email      TEXT,
	created_at TIMESTAMP
);

CREATE TABLE Category (
	category_id TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	created_at  TIMESTAMP
);

CREATE TABLE Event (
	event_id        TEXT PRIMARY KEY,
	title           TEXT,
	description     TEXT,
	location        TEXT,
	image_url       TEXT,
	start_date_time TIMESTAMP,
	end_date_time   TIMESTAMP,
	price           TEXT,
	is_free         BOOLEAN NOT NULL DEFAULT 0,
	url             TEXT,
	category_id     TEXT,
	organizer_id    TEXT,
	created_at      TIMESTAMP
);

CREATE TABLE Orders (
	order_id     TEXT PRIMARY KEY,
	event_id     TEXT,
	buyer_id     TEXT,
	total_amount TEXT,
	created_at   TIMESTAMP
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return db
}

func seedUser(t *testing.T, db *sqlx.DB, userID, authID, firstName, lastName string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO User(user_id, auth_id, first_name, last_name, email, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, authID, firstName, lastName, firstName+"@example.com", time.Now().UTC())
	require.NoError(t, err)
}

func seedCategory(t *testing.T, db *sqlx.DB, categoryID, name string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO Category(category_id, name, created_at) VALUES (?, ?, ?)`,
		categoryID, name, time.Now().UTC())
	require.NoError(t, err)
}

func seedEvent(t *testing.T, db *sqlx.DB, eventID, title, categoryID, organizerID string, createdAt time.Time) {
	t.Helper()

	var cat, org interface{}
	if categoryID != "" {
		cat = categoryID
	}
	if organizerID != "" {
		org = organizerID
	}

	_, err := db.Exec(`INSERT INTO Event(event_id, title, image_url, start_date_time, end_date_time, is_free, category_id, organizer_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eventID, title, "https://img.example.com/"+eventID, createdAt, createdAt.Add(time.Hour), false, cat, org, createdAt)
	require.NoError(t, err)
}

func seedOrder(t *testing.T, db *sqlx.DB, orderID, eventID, buyerID string, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO Orders(order_id, event_id, buyer_id, total_amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		orderID, eventID, buyerID, "25.00", createdAt)
	require.NoError(t, err)
}

func strptr(s string) *string {
	return &s
}

func timeptr(tm time.Time) *time.Time {
	return &tm
}

func testEvent(title, categoryID string) *model.Event {
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	e := &model.Event{
		Title:         strptr(title),
		ImageURL:      strptr("https://img.example.com/" + title),
		StartDateTime: timeptr(start),
		EndDateTime:   timeptr(end),
		Price:         strptr("10.00"),
	}
	if categoryID != "" {
		e.CategoryID = strptr(categoryID)
	}
	return e
}

// recordingSignaler counts invalidation signals per path.
type recordingSignaler struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingSignaler) Invalidate(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recordingSignaler) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}
