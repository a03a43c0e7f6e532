package services

import (
	"fmt"
	"html"
	"time"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/roles"
)

const (
	dateLayout = "02/01/2006 15:04"
	timeLayout = "15:04"
)

// BaseMessage renders the HTML reminder text shared by every recipient of a
// milestone. Dates are shown in loc.
func BaseMessage(m *models.Meeting, milestone models.Milestone, loc *time.Location) string {
	title := html.EscapeString(m.DisplayTitle())
	place := html.EscapeString(m.DisplayPlace())
	start := m.Start.In(loc)

	switch milestone {
	case models.MilestoneT24:
		return fmt.Sprintf("⏳ <b>24h antes</b>\n<b>%s</b>\n🗓 %s\n📍 %s", title, start.Format(dateLayout), place)
	case models.MilestoneMorning:
		return fmt.Sprintf("🌅 <b>Hoy</b>\n<b>%s</b>\n🕑 %s\n📍 %s", title, start.Format(timeLayout), place)
	default:
		return fmt.Sprintf("⏰ <b>30 minutos antes</b>\n<b>%s</b>\n🕑 %s\n📍 %s", title, start.Format(timeLayout), place)
	}
}

// FormatPersonal prefixes base with a greeting for r. The role shown is the
// user's own role text when usable, else the matched canonical role
// capitalized. Recipients without a display name get base unchanged.
func FormatPersonal(base string, r models.Recipient) string {
	if r.DisplayName == "" {
		return base
	}

	role := r.RawRole.Display()
	if role == "" {
		role = roles.Capitalize(r.MatchedRole)
	}

	greeting := fmt.Sprintf("👋 Hola <b>%s</b>", html.EscapeString(r.DisplayName))
	if role != "" {
		greeting += fmt.Sprintf(" (%s)", html.EscapeString(role))
	}
	return greeting + "\n\n" + base
}
