package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/evolvo-uz/evolvo/logger"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Tgbot sends operational notifications (new inquiries, admin login
// alerts, daily digests) to a configured Telegram chat. It is optional:
// when no token is configured every send is a silent no-op.
type Tgbot struct {
	bot    *telego.Bot
	chatID int64
}

// NewTgbot initializes the bot from the configured token and chat id.
// Initialization failure disables notifications but never the caller.
func NewTgbot(token, chatID string) *Tgbot {
	t := &Tgbot{}
	if token == "" || chatID == "" {
		logger.Info("telegram notifications disabled: no token or chat id configured")
		return t
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		logger.Warning("telegram notifications disabled: bad chat id:", err)
		return t
	}

	bot, err := telego.NewBot(token)
	if err != nil {
		logger.Warning("telegram notifications disabled:", err)
		return t
	}

	t.bot = bot
	t.chatID = id
	return t
}

// Enabled reports whether the bot can deliver messages.
func (t *Tgbot) Enabled() bool {
	return t.bot != nil
}

// SendMessage delivers a plain-text message to the configured chat.
func (t *Tgbot) SendMessage(text string) error {
	if t.bot == nil {
		return errors.New("telegram bot is not configured")
	}
	_, err := t.bot.SendMessage(tu.Message(tu.ID(t.chatID), text))
	return err
}

// AdminLoginNotify reports an admin login attempt. Failures are only
// logged; a notification must never fail the login flow.
func (t *Tgbot) AdminLoginNotify(email, ip, userAgent string, success bool) {
	if t.bot == nil {
		return
	}
	outcome := "FAILED"
	if success {
		outcome = "successful"
	}
	text := fmt.Sprintf("Admin login %s\nEmail: %s\nIP: %s\nUser agent: %s\nTime: %s",
		outcome, email, ip, userAgent, time.Now().Format("2006-01-02 15:04:05"))
	if err := t.SendMessage(text); err != nil {
		logger.Warning("admin login notification failed:", err)
	}
}
