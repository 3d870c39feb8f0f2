// Package telegram is the driving adapter: it polls updates, dispatches
// slash commands and routes plain text into the user's active dialog.
package telegram

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"kcalbot/internal/app"
)

const inboxSize = 16

// Bot wires the Telegram long-polling loop to the application services.
type Bot struct {
	api      *tgbotapi.BotAPI
	dialogs  *app.Dialogs
	tracker  *app.Tracker
	progress *app.Progress
	log      *zap.Logger

	mu      sync.Mutex
	inboxes map[int64]chan *tgbotapi.Message
}

// New authorizes against the Bot API and returns a ready-to-run bot.
func New(token string, dialogs *app.Dialogs, tracker *app.Tracker, progress *app.Progress, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	log.Info("authorized", zap.String("username", api.Self.UserName))

	return &Bot{
		api:      api,
		dialogs:  dialogs,
		tracker:  tracker,
		progress: progress,
		log:      log,
		inboxes:  make(map[int64]chan *tgbotapi.Message),
	}, nil
}

// Run polls updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			b.deliver(ctx, update.Message)
		}
	}
}

// deliver enqueues the message into the sender's inbox. One worker goroutine
// per user keeps that user's messages in arrival order, while a slow lookup
// for one user never delays anyone else.
func (b *Bot) deliver(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	b.mu.Lock()
	inbox, ok := b.inboxes[userID]
	if !ok {
		inbox = make(chan *tgbotapi.Message, inboxSize)
		b.inboxes[userID] = inbox
		go b.worker(ctx, inbox)
	}
	b.mu.Unlock()

	select {
	case inbox <- msg:
	default:
		b.log.Warn("user inbox full, dropping message", zap.Int64("user", userID))
	}
}

func (b *Bot) worker(ctx context.Context, inbox <-chan *tgbotapi.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-inbox:
			b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	b.log.Info("message received", zap.Int64("user", userID), zap.String("text", msg.Text))

	// /cancel works even mid-dialog; everything else is consumed by the
	// active session first.
	if msg.IsCommand() && msg.Command() == "cancel" {
		if b.dialogs.Abandon(userID) {
			b.reply(msg.Chat.ID, "Cancelled.")
		} else {
			b.reply(msg.Chat.ID, "Nothing to cancel.")
		}
		return
	}

	if replies, handled := b.dialogs.Handle(ctx, userID, msg.Text); handled {
		b.reply(msg.Chat.ID, replies...)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	b.reply(msg.Chat.ID, "I did not catch that. Send /start for the list of commands.")
}

func (b *Bot) reply(chatID int64, texts ...string) {
	for _, text := range texts {
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			b.log.Error("send failed", zap.Int64("chat", chatID), zap.Error(err))
		}
	}
}

func (b *Bot) sendPhoto(chatID int64, name, caption string, data []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error("photo send failed", zap.Int64("chat", chatID), zap.Error(err))
	}
}
