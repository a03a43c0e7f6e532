package bot

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

func init() {
	_ = tgbotapi.SetLogger(log.Telegram())
}

// Bot wraps the Telegram Bot API client. It implements contract.Transport.
type Bot struct {
	api     *tgbotapi.BotAPI
	timeout time.Duration
}

// NewBot authenticates with token. Every API request is bounded by timeout.
func NewBot(token string, timeout time.Duration) (*Bot, error) {
	return newBot(token, tgbotapi.APIEndpoint, timeout)
}

func newBot(token, endpoint string, timeout time.Duration) (*Bot, error) {
	client := &http.Client{Timeout: timeout}
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, err
	}
	api.Debug = false
	log.Info("bot initialized", "username", api.Self.UserName)
	return &Bot{api: api, timeout: timeout}, nil
}

// UserName returns the bot's @username without the @.
func (b *Bot) UserName() string {
	return b.api.Self.UserName
}

// Send delivers an HTML message. chatID is a numeric chat id or a public
// channel @username.
func (b *Bot) Send(ctx context.Context, chatID, text string) error {
	if err := ctx.Err(); err != nil {
		return &models.TransportError{ChatID: chatID, Err: err}
	}

	msg := newHTMLMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return &models.TransportError{ChatID: chatID, Err: err}
	}
	return nil
}

func newHTMLMessage(chatID, text string) tgbotapi.MessageConfig {
	var msg tgbotapi.MessageConfig
	if id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64); err == nil {
		msg = tgbotapi.NewMessage(id, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(strings.TrimSpace(chatID), text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

// RegisterCommands publishes the command menu shown by Telegram clients.
func (b *Bot) RegisterCommands() error {
	_, err := b.api.Request(tgbotapi.NewSetMyCommands(Commands...))
	return err
}

// Run reads updates until ctx is cancelled and answers commands with h.
func (b *Bot) Run(ctx context.Context, h *Handler) error {
	u := tgbotapi.NewUpdate(0)
	// Long polling must finish before the HTTP client gives up.
	u.Timeout = int(b.timeout.Seconds()) / 2
	if u.Timeout < 1 {
		u.Timeout = 1
	}

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			reply := h.Reply(ctx, update.Message)
			chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
			if err := b.Send(ctx, chatID, reply); err != nil {
				log.Error("command reply failed", err, "command", update.Message.Command())
			}
		}
	}
}
