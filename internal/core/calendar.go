package core

import (
	"calendr/internal/repository"
	tokenIssuer "calendr/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUsernameTaken error = errors.New("username already exists")
var ErrEventNotFound error = errors.New("event not found")

const bcryptCost = 10
const sessionTTL = 7 * 24 * time.Hour

// Calendar provides registration, login and per-user event operations.
type Calendar struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
}

// NewCalendar is a constructor function for the Calendar type.
func NewCalendar(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer) *Calendar {
	return &Calendar{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register hashes the password, creates the user and issues a session token.
func (c *Calendar) Register(ctx context.Context, creds Credentials) (Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := c.repo.CreateUser(ctx, creds.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return Session{}, ErrUsernameTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	c.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return c.issueSession(user)
}

// Login checks the credentials against the stored hash. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (c *Calendar) Login(ctx context.Context, creds Credentials) (Session, error) {
	user, err := c.repo.FindUserByName(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return c.issueSession(user)
}

// Authorize verifies a session token and decodes the identity it carries.
func (c *Calendar) Authorize(token string) (Identity, error) {
	claims, err := c.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("validate jwt token: %w", err)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("subject claim missing")
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("parse subject claim: %w", err)
	}

	username, _ := claims["username"].(string)

	return Identity{
		UserID:   uint(userID),
		Username: username,
	}, nil
}

// ListEvents returns the user's events ordered by date ascending, then id.
func (c *Calendar) ListEvents(ctx context.Context, userID uint) ([]EventRecord, error) {
	events, err := c.repo.ListUserEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}

	return c.repoEventsToRecords(events), nil
}

func (c *Calendar) CreateEvent(ctx context.Context, userID uint, event NewEvent) (EventRecord, error) {
	created, err := c.repo.CreateEvent(ctx, repository.Event{
		UserID:    userID,
		Date:      event.Date,
		Label:     event.Label,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
	})
	if err != nil {
		return EventRecord{}, fmt.Errorf("create event: %w", err)
	}

	c.logs.Infow("event created", "userId", userID, "eventId", created.ID, "date", created.Date)

	return c.repoEventToRecord(created), nil
}

// DeleteEvent removes the event when it is owned by the user.
func (c *Calendar) DeleteEvent(ctx context.Context, userID, eventID uint) error {
	deleted, err := c.repo.DeleteUserEvent(ctx, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete user event: %w", err)
	}

	if !deleted {
		return ErrEventNotFound
	}

	c.logs.Infow("event deleted", "userId", userID, "eventId", eventID)
	return nil
}

func (c *Calendar) issueSession(user repository.User) (Session, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: sessionTTL,
	}

	token := c.jwtIssuer.Generate(tokenInfo)
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		Token:    signed,
		Username: user.Username,
	}, nil
}

func (c *Calendar) repoEventToRecord(event repository.Event) EventRecord {
	return EventRecord{
		ID:        event.ID,
		UserID:    event.UserID,
		Date:      event.Date,
		Label:     event.Label,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		CreatedAt: event.CreatedAt,
	}
}

func (c *Calendar) repoEventsToRecords(events []repository.Event) []EventRecord {
	records := make([]EventRecord, len(events))
	for i, event := range events {
		records[i] = c.repoEventToRecord(event)
	}
	return records
}
