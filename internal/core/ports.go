package core

import (
	"calendr/internal/repository"
	tokenIssuer "calendr/pkg/jwt"
	"context"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	FindUserByName(ctx context.Context, username string) (repository.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	ListUserEvents(ctx context.Context, userID uint) ([]repository.Event, error)
	CreateEvent(ctx context.Context, event repository.Event) (repository.Event, error)
	DeleteUserEvent(ctx context.Context, userID, eventID uint) (bool, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
