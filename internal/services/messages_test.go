package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

func TestBaseMessage(t *testing.T) {
	loc := guayaquil(t)
	m := &models.Meeting{
		ID:    "M1",
		Title: "Consejo <directivo>",
		Place: "Sala 2",
		Start: time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		milestone models.Milestone
		want      string
	}{
		{milestone: models.MilestoneT24, want: "⏳ <b>24h antes</b>\n<b>Consejo &lt;directivo&gt;</b>\n🗓 10/06/2025 14:00\n📍 Sala 2"},
		{milestone: models.MilestoneMorning, want: "🌅 <b>Hoy</b>\n<b>Consejo &lt;directivo&gt;</b>\n🕑 14:00\n📍 Sala 2"},
		{milestone: models.MilestoneT30, want: "⏰ <b>30 minutos antes</b>\n<b>Consejo &lt;directivo&gt;</b>\n🕑 14:00\n📍 Sala 2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.milestone), func(t *testing.T) {
			assert.Equal(t, tt.want, BaseMessage(m, tt.milestone, loc))
		})
	}
}

func TestBaseMessage_Defaults(t *testing.T) {
	m := &models.Meeting{ID: "M2", Start: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)}

	got := BaseMessage(m, models.MilestoneT30, time.UTC)

	assert.Contains(t, got, "<b>Reunión</b>")
	assert.Contains(t, got, "📍 —")
}

func TestFormatPersonal(t *testing.T) {
	base := "⏳ <b>24h antes</b>"

	tests := []struct {
		name      string
		recipient models.Recipient
		want      string
	}{
		{
			name:      "raw text role is preferred",
			recipient: models.Recipient{DisplayName: "Ana", MatchedRole: "cultivador", RawRole: models.TextRole("Cultivadora líder")},
			want:      "👋 Hola <b>Ana</b> (Cultivadora líder)\n\n" + base,
		},
		{
			name:      "first element of a raw list",
			recipient: models.Recipient{DisplayName: "Luis", MatchedRole: "lider", RawRole: models.ListRole("Músico", "Líder")},
			want:      "👋 Hola <b>Luis</b> (Músico)\n\n" + base,
		},
		{
			name:      "capitalized canonical role when raw is unusable",
			recipient: models.Recipient{DisplayName: "Eva", MatchedRole: "lider", RawRole: models.ListRole("", "Líder")},
			want:      "👋 Hola <b>Eva</b> (Lider)\n\n" + base,
		},
		{
			name:      "role omitted when nothing is known",
			recipient: models.Recipient{DisplayName: "Sol"},
			want:      "👋 Hola <b>Sol</b>\n\n" + base,
		},
		{
			name:      "name is escaped",
			recipient: models.Recipient{DisplayName: "<script>", MatchedRole: "x"},
			want:      "👋 Hola <b>&lt;script&gt;</b> (X)\n\n" + base,
		},
		{
			name:      "no display name sends the base text",
			recipient: models.Recipient{ChatID: "-100"},
			want:      base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPersonal(base, tt.recipient))
		})
	}
}
