package handler

const internalErr = "Internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

type createEventResponse struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	Event     string  `json:"event"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type deleteEventResponse struct {
	Success bool `json:"success"`
}
