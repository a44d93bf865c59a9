package validation

import (
	"fmt"
	"strings"
	"time"

	"habitctl/internal/constants"
	"habitctl/internal/models"
)

// Error is a client-side validation failure. It is detected before any
// network call and carries a user-facing message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Registration checks an account-creation payload before it is sent.
func Registration(data models.RegisterData) error {
	if !strings.Contains(data.Email, "@") || strings.HasPrefix(data.Email, "@") || strings.HasSuffix(data.Email, "@") {
		return newError("email", "invalid email address: %s", data.Email)
	}
	if len(data.Password) < 6 {
		return newError("password", "password must be at least 6 characters")
	}
	if data.ConfirmPassword != "" && data.ConfirmPassword != data.Password {
		return newError("confirm_password", "passwords do not match")
	}
	return nil
}

// HabitData checks a habit-creation payload before it is sent.
func HabitData(data models.HabitData) error {
	if strings.TrimSpace(data.Name) == "" {
		return newError("name", "habit name is required")
	}
	switch data.HabitType {
	case "", constants.HabitTypeBoolean, constants.HabitTypeCount, constants.HabitTypeDuration:
	default:
		return newError("habit_type", "invalid habit type: %s (expected boolean, count, or duration)", data.HabitType)
	}
	if data.Color != "" {
		if err := Color(data.Color); err != nil {
			return err
		}
	}
	if data.TargetValue < 0 {
		return newError("target_value", "target value cannot be negative")
	}
	return nil
}

// Color checks a hex color in #RRGGBB form.
func Color(color string) error {
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return newError("color", "color must be in hex format (#RRGGBB)")
	}
	for _, r := range color[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return newError("color", "color must be in hex format (#RRGGBB)")
		}
	}
	return nil
}

// Date checks a day string in YYYY-MM-DD form.
func Date(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return newError("date", "invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}
