package store

import (
	"context"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateRejectsUnknownBuyer(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrder()

	_, err := orders.Create(context.Background(), db, &model.Order{BuyerID: strptr("ghost")})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestOrderListByBuyerNewestFirstWithEventTitle(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "u1", "auth-u1", "Ada", "Lovelace")
	seedEvent(t, db, "e1", "Gophercon", "", "u1", time.Now().UTC())
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "o1", "e1", "u1", base)
	seedOrder(t, db, "o2", "e1", "u1", base.Add(time.Minute))
	orders := NewOrder()

	rows, total, err := orders.ListByBuyer(context.Background(), db, "u1", 10, 0)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "o2", rows[0].OrderID)
	assert.Equal(t, "Gophercon", rows[0].EventTitle)
}
