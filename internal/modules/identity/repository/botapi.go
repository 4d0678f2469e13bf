package repository

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/identity/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	sharedErrors "github.com/reshetovitsme/tg-restricted-relay/internal/shared/errors"
)

// BotAPI is a retrieval identity backed by a Bot API client. The service
// identity uses the bot's own client; the full-access identity uses a
// second client pointed at a self-hosted gateway holding a user session.
//
// The fetch primitive is forwardMessage into a private staging chat: the
// returned message object carries the full payload, and a channel with
// forwarding restricted rejects the forward with a forbidden-class error,
// which is exactly the signal the router escalates on.
type BotAPI struct {
	role        domain.Role
	relayChatID int64

	// The underlying client is one long-lived connection; concurrent
	// resolutions must not interleave calls on it.
	mu     sync.Mutex
	client *bot.Bot
}

// NewBotAPI creates an identity around an existing client.
func NewBotAPI(role domain.Role, client *bot.Bot, relayChatID int64) *BotAPI {
	return &BotAPI{
		role:        role,
		client:      client,
		relayChatID: relayChatID,
	}
}

// NewDeferredBotAPI creates an identity whose client is attached later via
// SetClient, once the bot itself has been constructed.
func NewDeferredBotAPI(role domain.Role, relayChatID int64) *BotAPI {
	return &BotAPI{
		role:        role,
		relayChatID: relayChatID,
	}
}

// SetClient attaches the underlying client.
func (c *BotAPI) SetClient(client *bot.Bot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = client
}

func (c *BotAPI) Role() domain.Role {
	return c.role
}

// Fetch retrieves the referenced message. Failures come back as
// *domain.AccessError; a missing client is an infrastructure fault.
func (c *BotAPI) Fetch(ctx context.Context, ref linkDomain.Reference) (*models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil, sharedErrors.ErrClientUnavailable
	}

	msg, err := c.client.ForwardMessage(ctx, &bot.ForwardMessageParams{
		ChatID:     c.relayChatID,
		FromChatID: ref.ChatID(),
		MessageID:  ref.MessageID,
	})
	if err != nil {
		return nil, &domain.AccessError{Kind: Classify(err), Role: c.role, Err: err}
	}

	return msg, nil
}

// Classify maps a Bot API error onto the access taxonomy.
//
// "chat not found" means this identity cannot see the chat at all, not that
// the message is gone, so it classifies as forbidden and lets the router
// try the next identity. Unknown API errors do the same.
func Classify(err error) domain.AccessKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.AccessKindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.AccessKindNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "too many requests"):
		return domain.AccessKindRateLimited
	case strings.Contains(msg, "message to forward not found"),
		strings.Contains(msg, "message not found"),
		strings.Contains(msg, "message_id_invalid"),
		strings.Contains(msg, "message to copy not found"):
		return domain.AccessKindNotFound
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "no such host"):
		return domain.AccessKindNetwork
	default:
		return domain.AccessKindForbidden
	}
}
