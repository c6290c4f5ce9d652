package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"warotator/internal/types"

	tele "gopkg.in/telebot.v4"
)

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Alerter tells operators on Telegram that a group ran out of active
// numbers. Repeated alerts for the same group are suppressed for cooldown.
type Alerter struct {
	tgBot    sender
	chat     tele.Recipient
	cooldown time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
}

func newAlerter(s sender, chat tele.Recipient, cooldown time.Duration) *Alerter {
	return &Alerter{
		tgBot:    s,
		chat:     chat,
		cooldown: cooldown,
		now:      time.Now,
		last:     make(map[string]time.Time),
	}
}

// NoActiveNumbers sends the alert in the background; the redirect path
// never waits on Telegram.
func (a *Alerter) NoActiveNumbers(_ context.Context, group types.Group) {
	if !a.allow(group.ID.String()) {
		return
	}
	text := fmt.Sprintf("⚠️ Group %q (/l/%s) has no active WhatsApp numbers. Visitors are seeing the \"no one available\" page.", group.Name, group.Slug)
	go func() {
		if _, err := a.tgBot.Send(a.chat, text); err != nil {
			slog.Warn("failed to send telegram alert", "error", err, "group_id", group.ID)
		}
	}()
}

func (a *Alerter) allow(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	if last, ok := a.last[key]; ok && now.Sub(last) < a.cooldown {
		return false
	}
	a.last[key] = now
	return true
}

// Nop is used when no Telegram credentials are configured.
type Nop struct{}

func (Nop) NoActiveNumbers(context.Context, types.Group) {}
