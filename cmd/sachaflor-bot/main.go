package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/bot"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/config"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/database"
	appLog "github.com/sachaflorestadistica-commits/sachaflor-bot/internal/log"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/scheduler"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/seed"
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/services"
)

const testMessage = "✅ Prueba de Sachaflor Bot: este chat recibirá los recordatorios."

type flagConfig struct {
	once     bool
	commands bool
	seedPath string
	sendTest string
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		appLog.Warn("could not read .env", "err", err)
	}

	flags := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		appLog.Error("failed to load config", err)
		return 1
	}
	appLog.SetLevel(cfg.LogLevel)

	appLog.Info("effective config",
		"store", cfg.Store,
		"timezone", cfg.Location.String(),
		"window", cfg.Window,
		"send_pause", cfg.SendPause,
		"schedule", cfg.TickSchedule,
		"recipients", cfg.Recipients,
		"once", flags.once,
		"commands", flags.commands,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Store
	dm, closeStore, err := database.Open(ctx, cfg)
	if err != nil {
		appLog.Error("failed to open store", err, "store", cfg.Store)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			appLog.Error("failed to close store", err)
		}
	}()

	if flags.seedPath != "" {
		return runSeed(ctx, cfg, flags.seedPath, dm)
	}

	// 2. Bot
	tg, err := bot.NewBot(cfg.TelegramToken, cfg.TelegramTimeout)
	if err != nil {
		appLog.Error("failed to create bot", err)
		return 1
	}

	var resolver services.RecipientResolver
	switch cfg.Recipients {
	case config.RecipientsChat:
		resolver = services.NewChatResolver(cfg.ChatID)
	default:
		resolver = services.NewRoleResolver(dm.User())
	}
	notifier := services.NewNotifier(resolver, tg, cfg.SendPause)

	if flags.sendTest != "" {
		if d := notifier.Deliver(ctx, flags.sendTest, testMessage); !d.OK() {
			return 1
		}
		return 0
	}

	// 3. Reminders
	reminders := services.NewReminderService(dm, notifier, cfg.Location, cfg.Window)

	if flags.once {
		if _, err := reminders.Tick(ctx); err != nil {
			appLog.Error("tick failed", err)
		}
		return 0
	}

	sched, err := scheduler.New(cfg.TickSchedule, cfg.Location)
	if err != nil {
		appLog.Error("invalid TICK_SCHEDULE", err)
		return 1
	}
	sched.CheckCoverage(cfg.Window)

	if flags.commands {
		if err := tg.RegisterCommands(); err != nil {
			appLog.Warn("could not register bot commands", "err", err)
		}
		handler := bot.NewHandler(services.NewMeetingService(dm.Meeting()), cfg.Location)
		go func() {
			if err := tg.Run(ctx, handler); err != nil {
				appLog.Error("command loop stopped", err)
			}
		}()
	}

	_ = sched.Run(ctx, func(ctx context.Context) {
		if _, err := reminders.Tick(ctx); err != nil {
			appLog.Error("tick failed", err)
		}
	})

	appLog.Info("sachaflor-bot exiting")
	return 0
}

func runSeed(ctx context.Context, cfg *config.Config, path string, dm contract.DataManager) int {
	f, err := os.Open(path)
	if err != nil {
		appLog.Error("failed to open seed file", err, "path", path)
		return 1
	}
	defer f.Close()

	if _, err := seed.Import(ctx, dm, f, cfg.Location); err != nil {
		appLog.Error("seed import failed", err, "path", path)
		return 1
	}
	return 0
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.BoolVar(&cfg.once, "once", false, "Run one reminder pass and exit")
	flag.BoolVar(&cfg.commands, "commands", false, "Also answer Telegram commands while running")
	flag.StringVar(&cfg.seedPath, "seed", "", "Import meetings and users from a YAML file and exit")
	flag.StringVar(&cfg.sendTest, "send-test", "", "Send a test message to this chat id and exit")

	flag.Parse()

	return cfg
}
