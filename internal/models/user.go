package models

import "strings"

// User is a roster entry that may receive reminders.
type User struct {
	ID          string
	DisplayName string
	ChatID      string
	// Role and Roles mirror the two field names used in the roster;
	// Roles wins when present.
	Role  RoleValue
	Roles RoleValue
}

// Name returns the display name, falling back to the user id.
func (u *User) Name() string {
	if n := strings.TrimSpace(u.DisplayName); n != "" {
		return n
	}
	return u.ID
}

// TelegramChatID returns the trimmed chat id; "" means unreachable.
func (u *User) TelegramChatID() string {
	return strings.TrimSpace(u.ChatID)
}

// RawRoles returns the role field that applies to this user.
func (u *User) RawRoles() RoleValue {
	if u.Roles.Present() {
		return u.Roles
	}
	return u.Role
}

// Recipient is a user resolved for one broadcast.
type Recipient struct {
	UserID      string
	DisplayName string
	ChatID      string
	// MatchedRole is the canonical role that made the user eligible.
	MatchedRole string
	// RawRole is the user's role field before normalization, kept for display.
	RawRole RoleValue
}
