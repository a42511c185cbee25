package repository

import (
	"calendr/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")

const eventOrder = "date, id"

type CalendarRepository struct {
	db Storage
}

func NewCalendarRepository(db Storage) *CalendarRepository {
	return &CalendarRepository{
		db: db,
	}
}

func (r *CalendarRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Event{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *CalendarRepository) FindUserByName(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreateUser inserts a new user. Username uniqueness is enforced by the
// storage engine; a violation surfaces as ErrUsernameTaken.
func (r *CalendarRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.InsertRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// ListUserEvents returns the user's events ordered by date, then insertion order.
func (r *CalendarRepository) ListUserEvents(ctx context.Context, userID uint) ([]Event, error) {
	events := []Event{}

	err := r.db.GetAllByOrdered(ctx, "user_id", userID, eventOrder, &events)
	if err != nil {
		return nil, fmt.Errorf("get user events: %w", err)
	}

	return events, nil
}

func (r *CalendarRepository) CreateEvent(ctx context.Context, event Event) (Event, error) {
	err := r.db.InsertRecord(ctx, &event)
	if err != nil {
		return Event{}, fmt.Errorf("insert event: %w", err)
	}

	return event, nil
}

// DeleteUserEvent removes the event only when it belongs to the given user.
// It reports whether a row was actually deleted.
func (r *CalendarRepository) DeleteUserEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	deleted, err := r.db.DeleteMatching(ctx, &Event{}, "id = ? AND user_id = ?", eventID, userID)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}

	return deleted > 0, nil
}
