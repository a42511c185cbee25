package payload

import (
	"calendr/internal/core"
	"errors"
	"regexp"

	"github.com/jellydator/validation"
)

const maxLabelLen = 16
const dateLayout = "2006-01-02"

// 24-hour clock, minutes zero-padded.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type CreateEventRequest struct {
	Date      string `json:"date"`
	Event     string `json:"event"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (c CreateEventRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Date,
			validation.Required.Error("Date, event and start time are required"),
			validation.Date(dateLayout).Error("Invalid date format")),
		validation.Field(&c.Event,
			validation.Required.Error("Date, event and start time are required"),
			validation.RuneLength(1, maxLabelLen).Error("Event must be 16 characters or less")),
		validation.Field(&c.StartTime,
			validation.Required.Error("Date, event and start time are required"),
			validation.Match(timePattern).Error("Invalid time format")),
		validation.Field(&c.EndTime,
			validation.Match(timePattern).Error("Invalid time format"),
			validation.By(c.endAfterStart)),
	)
}

// endAfterStart rejects an end time at or before the start time. Lexicographic
// comparison on HH:MM strings matches chronological order within a day.
func (c CreateEventRequest) endAfterStart(value any) error {
	end, _ := value.(string)
	if end == "" {
		return nil
	}

	if end <= c.StartTime {
		return errors.New("End time must be later than start time")
	}

	return nil
}

func (c CreateEventRequest) ToNewEvent() core.NewEvent {
	event := core.NewEvent{
		Date:      c.Date,
		Label:     c.Event,
		StartTime: c.StartTime,
	}

	if c.EndTime != "" {
		end := c.EndTime
		event.EndTime = &end
	}

	return event
}
