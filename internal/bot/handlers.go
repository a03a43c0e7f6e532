package bot

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/services"
)

const upcomingLimit = 5

// Commands is the menu registered with Telegram.
var Commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Mostrar tu chat id"},
	{Command: "id", Description: "Mostrar tu chat id"},
	{Command: "proximas", Description: "Próximas reuniones"},
	{Command: "help", Description: "Ayuda"},
}

// Handler builds replies to bot commands.
type Handler struct {
	meetings *services.MeetingService
	loc      *time.Location
}

func NewHandler(meetings *services.MeetingService, loc *time.Location) *Handler {
	return &Handler{meetings: meetings, loc: loc}
}

// Reply returns the HTML answer for a command message.
func (h *Handler) Reply(ctx context.Context, msg *tgbotapi.Message) string {
	switch msg.Command() {
	case "start", "id":
		return cmdID(msg)
	case "proximas":
		return h.cmdUpcoming(ctx)
	case "help":
		return cmdHelp()
	default:
		return "Comando desconocido. Usa /help"
	}
}

func cmdID(msg *tgbotapi.Message) string {
	return fmt.Sprintf("Tu chat id es <code>%d</code>\nPásaselo a quien administra los recordatorios.", msg.Chat.ID)
}

func cmdHelp() string {
	var sb strings.Builder
	sb.WriteString("Comandos:\n")
	for _, c := range Commands {
		sb.WriteString(fmt.Sprintf("/%s — %s\n", c.Command, c.Description))
	}
	return sb.String()
}

func (h *Handler) cmdUpcoming(ctx context.Context) string {
	meetings, err := h.meetings.Upcoming(ctx, upcomingLimit)
	if err != nil {
		log.Error("list upcoming meetings failed", err)
		return "No pude leer las reuniones. Intenta más tarde."
	}
	if len(meetings) == 0 {
		return "No hay reuniones programadas."
	}

	var sb strings.Builder
	sb.WriteString("<b>Próximas reuniones</b>\n")
	for i, m := range meetings {
		sb.WriteString(fmt.Sprintf("%d) %s · <b>%s</b> · %s\n",
			i+1,
			m.Start.In(h.loc).Format("02/01 15:04"),
			html.EscapeString(m.DisplayTitle()),
			html.EscapeString(m.DisplayPlace()),
		))
	}
	return sb.String()
}
