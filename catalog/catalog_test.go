package catalog

import (
	"context"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/revalidate"
	"evently-catalog-backend/store"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
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

func newService() *Service {
	return New(store.NewEvent(revalidate.Noop{}), store.NewUser(), store.NewOrder())
}

func seedUser(t *testing.T, db *sqlx.DB, userID string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO User(user_id, auth_id, first_name, last_name, email, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, "auth-"+userID, "Ada", "Lovelace", userID+"@example.com", time.Now().UTC())
	require.NoError(t, err)
}

func seedEvent(t *testing.T, db *sqlx.DB, eventID, categoryID, organizerID string, createdAt time.Time) {
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
		eventID, "Event "+eventID, "https://img.example.com/"+eventID, createdAt, createdAt.Add(time.Hour), true, cat, org, createdAt)
	require.NoError(t, err)
}

// Eight events, page 1 of limit 6: newest six in descending creation order,
// two pages total.
func TestGetAllEventsFirstPageNewestFirst(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 8; i++ {
		seedEvent(t, db, fmt.Sprintf("e%d", i), "", "", base.Add(time.Duration(i)*time.Minute))
	}
	service := newService()

	page := service.GetAllEvents(context.Background(), db, "", "", 6, 1)

	require.Len(t, page.Data, 6)
	assert.Equal(t, int64(2), page.TotalPages)
	for i, want := range []string{"e8", "e7", "e6", "e5", "e4", "e3"} {
		assert.Equal(t, want, page.Data[i].EventID)
	}
}

func TestGetAllEventsSecondPage(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 8; i++ {
		seedEvent(t, db, fmt.Sprintf("e%d", i), "", "", base.Add(time.Duration(i)*time.Minute))
	}
	service := newService()

	page := service.GetAllEvents(context.Background(), db, "", "", 6, 2)

	require.Len(t, page.Data, 2)
	assert.Equal(t, "e2", page.Data[0].EventID)
	assert.Equal(t, "e1", page.Data[1].EventID)
}

func TestGetAllEventsClampsPageBelowOne(t *testing.T) {
	db := newTestDB(t)
	seedEvent(t, db, "e1", "", "", time.Now().UTC())
	service := newService()

	zero := service.GetAllEvents(context.Background(), db, "", "", 6, 0)
	negative := service.GetAllEvents(context.Background(), db, "", "", 6, -3)

	assert.Len(t, zero.Data, 1)
	assert.Len(t, negative.Data, 1)
}

func TestGetAllEventsNormalizesAbsentRelations(t *testing.T) {
	db := newTestDB(t)
	seedEvent(t, db, "e1", "", "", time.Now().UTC())
	service := newService()

	page := service.GetAllEvents(context.Background(), db, "", "", 6, 1)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "", page.Data[0].Category.Name)
	assert.Equal(t, "", page.Data[0].Organizer.ID)
	assert.Equal(t, "", page.Data[0].Organizer.FirstName)
}

// Storage failure must come back as an empty page, not an error.
func TestGetAllEventsSwallowsStorageFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Close())
	service := newService()

	page := service.GetAllEvents(context.Background(), db, "", "", 6, 1)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.TotalPages)
}

func TestGetEventsByUserFiltersToOrganizer(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedEvent(t, db, "e1", "", "u1", base)
	seedEvent(t, db, "e2", "", "u2", base.Add(time.Minute))
	seedEvent(t, db, "e3", "", "u1", base.Add(2*time.Minute))
	service := newService()

	page, err := service.GetEventsByUser(context.Background(), db, "u1", 6, 1)

	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "e3", page.Data[0].EventID)
	assert.Equal(t, "e1", page.Data[1].EventID)
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestGetEventsByUserUnknownUser(t *testing.T) {
	db := newTestDB(t)
	service := newService()

	_, err := service.GetEventsByUser(context.Background(), db, "ghost", 6, 1)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetRelatedEventsExcludesTheEventItself(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedEvent(t, db, "e1", "c1", "", base)
	seedEvent(t, db, "e2", "c1", "", base.Add(time.Minute))
	seedEvent(t, db, "e3", "c1", "", base.Add(2*time.Minute))
	seedEvent(t, db, "e4", "c2", "", base.Add(3*time.Minute))
	service := newService()

	page := service.GetRelatedEventsByCategory(context.Background(), db, "c1", "e2", 0, 1)

	require.Len(t, page.Data, 2)
	for _, event := range page.Data {
		assert.NotEqual(t, "e2", event.EventID)
	}
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestGetRelatedEventsDefaultLimit(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		seedEvent(t, db, fmt.Sprintf("e%d", i), "c1", "", base.Add(time.Duration(i)*time.Minute))
	}
	service := newService()

	page := service.GetRelatedEventsByCategory(context.Background(), db, "c1", "e5", 0, 1)

	assert.Len(t, page.Data, RelatedLimit)
	assert.Equal(t, int64(2), page.TotalPages)
}

func TestGetOrdersByUser(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1")
	seedEvent(t, db, "e1", "", "u1", time.Now().UTC())
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	_, err := db.Exec(`INSERT INTO Orders(order_id, event_id, buyer_id, total_amount, created_at) VALUES ('o1', 'e1', 'u1', '25.00', ?)`, base)
	require.NoError(t, err)
	service := newService()

	page, err := service.GetOrdersByUser(context.Background(), db, "u1", 6, 1)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "o1", page.Data[0].OrderID)
	assert.Equal(t, "Event e1", page.Data[0].EventTitle)
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestTotalPagesRounding(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 6))
	assert.Equal(t, int64(1), totalPages(6, 6))
	assert.Equal(t, int64(2), totalPages(7, 6))
	assert.Equal(t, int64(2), totalPages(8, 6))
}
