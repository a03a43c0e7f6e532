package models

import (
	"strings"
	"time"
)

// Defaults shown when a meeting document leaves the field empty.
const (
	DefaultTitle = "Reunión"
	DefaultPlace = "—"
)

// Meeting is a scheduled meeting as read from the store. It is never
// mutated by the reminder job.
type Meeting struct {
	ID    string
	Title string
	Place string
	// Start is zero when the stored datetime is missing or has the wrong type.
	Start time.Time
	// Roles are the target roles; absent or empty means nobody is notified.
	Roles RoleValue
}

// HasStart reports whether the meeting carries a usable start instant.
func (m *Meeting) HasStart() bool {
	return !m.Start.IsZero()
}

func (m *Meeting) DisplayTitle() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	return DefaultTitle
}

func (m *Meeting) DisplayPlace() string {
	if p := strings.TrimSpace(m.Place); p != "" {
		return p
	}
	return DefaultPlace
}
