package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEventNameEmpty    = errors.New("event name cannot be empty")
	ErrEventNameTooLong  = errors.New("event name is too long (max 100 chars)")
	ErrNotesTooLong      = errors.New("event notes are too long (max 500 chars)")
	ErrInvalidCompliance = errors.New("compliance level must be between 0 and 100")
	ErrTimestampRequired = errors.New("event timestamp is required")
)

const (
	MaxNameLen    = 100
	MaxNotesLen   = 500
	MaxCompliance = 100
)

// Event is a single recorded habit occurrence. Timestamps are kept in UTC.
type Event struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Category        Category  `json:"category" db:"category"`
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`
	ComplianceLevel *int      `json:"compliance_level,omitempty" db:"compliance_level"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

func NewEvent(name string, category Category, timestamp time.Time, compliance *int, notes *string) (*Event, error) {
	e := &Event{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(name),
		Category:        category,
		Timestamp:       timestamp.UTC(),
		ComplianceLevel: compliance,
		CreatedAt:       time.Now().UTC(),
	}

	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed != "" {
			e.Notes = &trimmed
		}
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) Validate() error {
	if e.Name == "" {
		return ErrEventNameEmpty
	}
	if utf8.RuneCountInString(e.Name) > MaxNameLen {
		return ErrEventNameTooLong
	}
	if e.Timestamp.IsZero() {
		return ErrTimestampRequired
	}
	if e.ComplianceLevel != nil && (*e.ComplianceLevel < 0 || *e.ComplianceLevel > MaxCompliance) {
		return ErrInvalidCompliance
	}
	if e.Notes != nil && utf8.RuneCountInString(*e.Notes) > MaxNotesLen {
		return ErrNotesTooLong
	}
	return nil
}
