package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	activityService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/activity/service"
	linkService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/service"
	resolveService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/service"
	userService "github.com/reshetovitsme/tg-restricted-relay/internal/modules/user/service"
	"github.com/reshetovitsme/tg-restricted-relay/internal/shared/config"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg      *config.Config
	parser   *linkService.Parser
	engine   *resolveService.Engine
	users    *userService.Service
	activity *activityService.Service
}

// New creates a new Telegram handler
func New(cfg *config.Config, parser *linkService.Parser, engine *resolveService.Engine, users *userService.Service, activity *activityService.Service) *Handler {
	return &Handler{
		cfg:      cfg,
		parser:   parser,
		engine:   engine,
		users:    users,
		activity: activity,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypeExact, h.handleStatus)
}

// HandleUpdate processes incoming updates. Messages without a recognizable
// message link are ignored silently.
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		return
	}

	refs := h.parser.Parse(msg.Text)
	if len(refs) == 0 {
		return
	}

	if !h.authorize(msg.From) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "❌ You are not authorized to use this bot.",
		})
		return
	}

	processing, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          msg.Chat.ID,
		Text:            "🔄 Processing your request...",
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		slog.Error("Failed to send processing notice", "error", err, "chat_id", msg.Chat.ID)
	}

	results, err := h.engine.ResolveAll(ctx, refs)
	if err != nil {
		slog.Error("Resolution batch aborted", "error", err, "chat_id", msg.Chat.ID)
		h.replaceProcessing(ctx, b, msg.Chat.ID, processing,
			"❌ The relay is temporarily unavailable. Please try again later.")
		return
	}

	for _, res := range results {
		h.deliver(ctx, b, msg.Chat.ID, msg.ID, res)
		h.activity.Track(res, msg.From.ID)
	}

	if processing != nil {
		if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    msg.Chat.ID,
			MessageID: processing.ID,
		}); err != nil {
			slog.Warn("Could not delete processing notice", "error", err, "chat_id", msg.Chat.ID)
		}
	}
}

func (h *Handler) authorize(from *models.User) bool {
	if h.users.IsAuthorized(from.ID, h.cfg.AllowedUsers) {
		return true
	}

	// First user to talk to an unrestricted bot becomes its admin
	admitted, err := h.users.EnsureFirstAdmin(from.ID, from.Username, h.cfg.AllowedUsers)
	if err != nil {
		slog.Error("Failed to save first user", "error", err, "user_id", from.ID)
		return false
	}
	return admitted
}

func (h *Handler) replaceProcessing(ctx context.Context, b *bot.Bot, chatID int64, processing *models.Message, text string) {
	if processing == nil {
		return
	}
	if _, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: processing.ID,
		Text:      text,
	}); err != nil {
		slog.Warn("Could not edit processing notice", "error", err, "chat_id", chatID)
	}
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	h.authorize(update.Message.From)

	text := `👋 Welcome to Restricted Relay Bot!

Send me a link to a Telegram message and I will fetch its content for you,
even when the source channel restricts forwarding.

Supported link formats:
• https://t.me/channel/message_id
• https://t.me/c/chat_id/message_id
• https://t.me/c/chat_id/thread_id/message_id
• https://telegram.me/channel/message_id

You can send several links in one message.`

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

func (h *Handler) handleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.users.IsAuthorized(update.Message.From.ID, h.cfg.AllowedUsers) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "❌ Unauthorized",
		})
		return
	}

	recent, err := h.activity.GetRecent(50)
	if err != nil {
		slog.Error("Failed to read activity", "error", err)
	}

	fullAccess := "not configured"
	if h.cfg.HasFullAccess() {
		fullAccess = "configured"
	}

	text := fmt.Sprintf(`📊 Relay Status:

Full-access identity: %s
Identity order: %s
Cache: %d entries max, TTL %d min
Fetch timeout: %ds
Recent resolutions: %d`,
		fullAccess, h.cfg.IdentityOrder, h.cfg.CacheSize, h.cfg.CacheTTL,
		h.cfg.FetchTimeout, len(recent))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}
