package store

import (
	"context"
	"database/sql"
	"errors"
	"evently-catalog-backend/apperror"
	"evently-catalog-backend/model"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func NewUser() *User {
	return &User{}
}

type User struct{}

func (s *User) Create(ctx context.Context, db *sqlx.DB, user *model.User) (*model.User, error) {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = &now

	q, args, err := sb.Insert(userTable).
		Columns("user_id", "auth_id", "first_name", "last_name", "email", "created_at").
		Values(user.UserID, user.AuthID, user.FirstName, user.LastName, user.Email, user.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("create: error building insert: %w", err)
	}

	if _, err = db.ExecContext(ctx, q, args...); err != nil {
		return nil, fmt.Errorf("create: unable to insert user: %w", err)
	}

	return user, nil
}

func (s *User) GetByID(ctx context.Context, db *sqlx.DB, userID string) (*model.User, error) {
	user, found, err := fetchUser(ctx, db, sq.Eq{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("getByID: %w", err)
	}

	if !found {
		return nil, apperror.E(apperror.NotFound, "getByID: user not found: %s", userID)
	}

	return user, nil
}

func (s *User) GetByAuthID(ctx context.Context, db *sqlx.DB, authID string) (*model.User, error) {
	user, found, err := fetchUser(ctx, db, sq.Eq{"auth_id": authID})
	if err != nil {
		return nil, fmt.Errorf("getByAuthID: %w", err)
	}

	if !found {
		return nil, apperror.E(apperror.NotFound, "getByAuthID: user not found: %s", authID)
	}

	return user, nil
}

// Update overwrites the profile fields of the user carrying the given
// external auth id.
func (s *User) Update(ctx context.Context, db *sqlx.DB, authID string, user *model.User) (*model.User, error) {
	q, args, err := sb.Update(userTable).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("email", user.Email).
		Where(sq.Eq{"auth_id": authID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update: error building update: %w", err)
	}

	result, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update: unable to update user: %s: %w", authID, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update: error reading affected rows: %w", err)
	}

	if updated == 0 {
		return nil, apperror.E(apperror.NotFound, "update: user not found: %s", authID)
	}

	return s.GetByAuthID(ctx, db, authID)
}

// Delete removes the user carrying the given external auth id. Owned events
// keep their rows with organizer_id nulled, placed orders keep theirs with
// buyer_id nulled, and all three statements commit together or not at all.
func (s *User) Delete(ctx context.Context, db *sqlx.DB, authID string) (*model.User, error) {
	user, found, err := fetchUser(ctx, db, sq.Eq{"auth_id": authID})
	if err != nil {
		return nil, fmt.Errorf("delete: %w", err)
	}

	if !found {
		return nil, apperror.E(apperror.NotFound, "delete: user not found: %s", authID)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("delete: error beginning transaction: %w", err)
	}

	if err = detachUser(ctx, tx, user.UserID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete: %w", err)
	}

	q, args, err := sb.Delete(userTable).Where(sq.Eq{"user_id": user.UserID}).ToSql()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete: error building delete: %w", err)
	}

	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("delete: unable to delete user: %s: %w", user.UserID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("delete: error committing transaction: %w", err)
	}

	return user, nil
}

func detachUser(ctx context.Context, tx *sqlx.Tx, userID string) error {
	q, args, err := sb.Update(eventTable).
		Set("organizer_id", nil).
		Where(sq.Eq{"organizer_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("detachUser: error building event update: %w", err)
	}

	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("detachUser: unable to detach events: %w", err)
	}

	q, args, err = sb.Update(orderTable).
		Set("buyer_id", nil).
		Where(sq.Eq{"buyer_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("detachUser: error building order update: %w", err)
	}

	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("detachUser: unable to detach orders: %w", err)
	}

	return nil
}

func fetchUser(ctx context.Context, db *sqlx.DB, cond sq.Eq) (*model.User, bool, error) {
	q, args, err := sb.Select("user_id", "auth_id", "first_name", "last_name", "email", "created_at").
		From(userTable).
		Where(cond).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("fetchUser: error building query: %w", err)
	}

	var user model.User
	err = db.GetContext(ctx, &user, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetchUser: error scanning user: %w", err)
	}

	return &user, true, nil
}

func userExists(ctx context.Context, db *sqlx.DB, userID string) (bool, error) {
	_, found, err := fetchUser(ctx, db, sq.Eq{"user_id": userID})
	if err != nil {
		return false, fmt.Errorf("userExists: %w", err)
	}
	return found, nil
}
