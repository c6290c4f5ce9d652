package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"warotator/internal/types"

	tele "gopkg.in/telebot.v4"
)

type GroupLister interface {
	ListGroups(ctx context.Context) ([]types.GroupSummary, error)
}

// TelegramBot owns the bot connection. It pushes alerts to the operator
// chat and answers /groups there with the state of every group.
type TelegramBot struct {
	tgBot  *tele.Bot
	chatID int64
	groups GroupLister
	alerts *Alerter
}

func NewTelegramBot(tgToken string, chatID int64, cooldown time.Duration, groups GroupLister) (*TelegramBot, error) {
	pref := tele.Settings{
		Token:  tgToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("failed to initialize telegram bot", "error", err)
		return nil, err
	}

	return &TelegramBot{
		tgBot:  bot,
		chatID: chatID,
		groups: groups,
		alerts: newAlerter(bot, tele.ChatID(chatID), cooldown),
	}, nil
}

func (b *TelegramBot) Alerter() *Alerter {
	return b.alerts
}

func (b *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Telegram bot started", "bot_username", b.tgBot.Me.Username)

	b.tgBot.Handle("/groups", b.handleGroups)

	go func() {
		<-ctx.Done()
		slog.Info("Telegram bot shutting down")
		b.tgBot.Stop()
	}()

	b.tgBot.Start()
	return nil
}

func (b *TelegramBot) handleGroups(c tele.Context) error {
	if c.Chat() == nil || c.Chat().ID != b.chatID {
		attrs := []any{}
		if c.Chat() != nil {
			attrs = append(attrs, "chat_id", c.Chat().ID)
		}
		if c.Sender() != nil {
			attrs = append(attrs, "sender_id", c.Sender().ID)
		}
		slog.Warn("ignoring command from foreign chat", attrs...)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	groups, err := b.groups.ListGroups(ctx)
	if err != nil {
		slog.Error("failed to list groups", "error", err)
		return c.Send("Failed to load groups, please try again later.")
	}
	return c.Send(formatGroups(groups))
}

func formatGroups(groups []types.GroupSummary) string {
	if len(groups) == 0 {
		return "No groups yet."
	}
	var sb strings.Builder
	for _, g := range groups {
		mark := "✅"
		switch {
		case !g.IsActive:
			mark = "⏸"
		case g.ActiveNumbers == 0:
			mark = "⚠️"
		}
		fmt.Fprintf(&sb, "%s %s (/l/%s): %d active numbers, %d clicks\n", mark, g.Name, g.Slug, g.ActiveNumbers, g.Clicks)
	}
	return strings.TrimRight(sb.String(), "\n")
}
