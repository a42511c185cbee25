package cmd

import (
	"calendr/internal/config"
	"calendr/internal/core"
	"calendr/internal/db"
	"calendr/internal/http/handler"
	"calendr/internal/http/handler/middleware"
	"calendr/internal/http/payload"
	"calendr/internal/http/server"
	"calendr/internal/repository"
	"calendr/pkg/jwt"
	"calendr/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	rateLimitRequests = 100
	rateLimitWindow   = 15 * time.Minute
)

func Start() error {
	logger := log.NewZapLogger("calendr", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewCalendarRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// calendar service
	calendar := core.NewCalendar(logger, repo, jwtService)

	// handler
	calHlr := handler.NewCalendarHandler(
		logger,
		payload.DecodeValidator{},
		calendar)

	// middleware
	authMW := middleware.NewAuthMiddleware(logger, calendar)
	rateMW := middleware.NewRateLimitMiddleware(rateLimitRequests, rateLimitWindow)
	defer rateMW.Stop()

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, calHlr.HandleRegister)
	mux.HandleFunc(handler.Login, calHlr.HandleLogin)
	mux.Handle(handler.ListEvents, authMW.RequireUser(http.HandlerFunc(calHlr.HandleListEvents)))
	mux.Handle(handler.CreateEvent, authMW.RequireUser(http.HandlerFunc(calHlr.HandleCreateEvent)))
	mux.Handle(handler.DeleteEvent, authMW.RequireUser(http.HandlerFunc(calHlr.HandleDeleteEvent)))
	mux.Handle("GET /", http.FileServer(http.Dir(config.PublicDir)))

	hdlr := rateMW.Limit(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
