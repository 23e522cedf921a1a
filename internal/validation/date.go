package validation

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date wire format used throughout the API.
const DateLayout = "2006-01-02"

// ValidateDate checks a YYYY-MM-DD calendar date
func ValidateDate(date string) error {
	if date == "" {
		return errors.New("date is required")
	}

	_, err := time.Parse(DateLayout, date)
	if err != nil {
		return errors.New("invalid date format, expected YYYY-MM-DD")
	}

	return nil
}
