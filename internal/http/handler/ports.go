package handler

import (
	"calendr/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CalendarService . CalendarService
type CalendarService interface {
	Register(ctx context.Context, creds core.Credentials) (core.Session, error)
	Login(ctx context.Context, creds core.Credentials) (core.Session, error)
	ListEvents(ctx context.Context, userID uint) ([]core.EventRecord, error)
	CreateEvent(ctx context.Context, userID uint, event core.NewEvent) (core.EventRecord, error)
	DeleteEvent(ctx context.Context, userID, eventID uint) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
