package handler

import (
	"calendr/internal/core"
	"calendr/internal/http/handler/middleware"
	"calendr/internal/http/payload"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Register    = "POST /api/register"
	Login       = "POST /api/login"
	ListEvents  = "GET /api/events"
	CreateEvent = "POST /api/events"
	DeleteEvent = "DELETE /api/events/{id}"
)

type CalendarHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	calendar         CalendarService
}

func NewCalendarHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, calendarService CalendarService) *CalendarHandler {
	return &CalendarHandler{
		logs:             logger,
		requestValidator: requestValidator,
		calendar:         calendarService,
	}
}

func (h *CalendarHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	var regPayload payload.RegisterRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &regPayload); err != nil {
		h.respond(w, errorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	session, err := h.calendar.Register(r.Context(), regPayload.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrUsernameTaken) {
			h.respond(w, errorResponse{Error: "Username already exists"}, http.StatusBadRequest, requestId)
			return
		}

		h.respond(w, errorResponse{Error: internalErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *CalendarHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	var loginPayload payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &loginPayload); err != nil {
		h.respond(w, errorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.calendar.Login(r.Context(), loginPayload.ToCredentials())
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			h.respond(w, errorResponse{Error: "Invalid credentials"}, http.StatusBadRequest, requestId)
			return
		}

		h.respond(w, errorResponse{Error: internalErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *CalendarHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.respond(w, errorResponse{Error: "Access token required"}, http.StatusUnauthorized, requestId)
		return
	}

	events, err := h.calendar.ListEvents(r.Context(), identity.UserID)
	if err != nil {
		h.respond(w, errorResponse{Error: internalErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list events",
			"error", err,
			"handler", ListEvents,
			"request_id", requestId)
		return
	}

	h.respond(w, events, http.StatusOK, requestId)
}

func (h *CalendarHandler) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.respond(w, errorResponse{Error: "Access token required"}, http.StatusUnauthorized, requestId)
		return
	}

	var eventPayload payload.CreateEventRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &eventPayload); err != nil {
		h.respond(w, errorResponse{Error: err.Error()}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateEvent,
			"request_id", requestId)
		return
	}

	event, err := h.calendar.CreateEvent(r.Context(), identity.UserID, eventPayload.ToNewEvent())
	if err != nil {
		h.respond(w, errorResponse{Error: internalErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to create event",
			"error", err,
			"handler", CreateEvent,
			"request_id", requestId)
		return
	}

	h.respond(w, createEventResponse{
		ID:        event.ID,
		Date:      event.Date,
		Event:     event.Label,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
	}, http.StatusOK, requestId)
}

func (h *CalendarHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	requestId := requestIDFromContext(r)

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.respond(w, errorResponse{Error: "Access token required"}, http.StatusUnauthorized, requestId)
		return
	}

	// a malformed id matches no row, same outcome as deleting a missing event
	eventID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.respond(w, errorResponse{Error: "Event not found"}, http.StatusNotFound, requestId)
		return
	}

	if err := h.calendar.DeleteEvent(r.Context(), identity.UserID, uint(eventID)); err != nil {
		if errors.Is(err, core.ErrEventNotFound) {
			h.respond(w, errorResponse{Error: "Event not found"}, http.StatusNotFound, requestId)
			return
		}

		h.respond(w, errorResponse{Error: internalErr}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete event",
			"error", err,
			"handler", DeleteEvent,
			"request_id", requestId)
		return
	}

	h.respond(w, deleteEventResponse{Success: true}, http.StatusOK, requestId)
}

func (h *CalendarHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestIDFromContext(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
