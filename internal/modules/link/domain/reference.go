package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// internalChatOffset turns the bare chat id from a t.me/c/ link into the
// chat id the API expects: -100<id> as one number.
const internalChatOffset int64 = 1_000_000_000_000

// Reference identifies a single message within a channel. ChannelKey is
// either a public channel slug or the numeric chat id recovered from a
// t.me/c/ link, rendered as a decimal string. RawLink keeps the matched
// link text for diagnostics and does not participate in identity.
type Reference struct {
	ChannelKey string
	MessageID  int
	RawLink    string
}

// Key is the cache identity of a reference.
type Key struct {
	ChannelKey string
	MessageID  int
}

func (r Reference) Key() Key {
	return Key{ChannelKey: r.ChannelKey, MessageID: r.MessageID}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.ChannelKey, k.MessageID)
}

// ChatID returns the value the Bot API expects as a chat identifier:
// the numeric id for internal chats, "@slug" for public channels.
func (r Reference) ChatID() any {
	if id, err := strconv.ParseInt(r.ChannelKey, 10, 64); err == nil {
		return id
	}
	return "@" + r.ChannelKey
}

// CanonicalLink rebuilds the canonical t.me form of the reference.
func (r Reference) CanonicalLink() string {
	if strings.HasPrefix(r.ChannelKey, "-100") {
		return fmt.Sprintf("https://t.me/c/%s/%d", strings.TrimPrefix(r.ChannelKey, "-100"), r.MessageID)
	}
	return fmt.Sprintf("https://t.me/%s/%d", r.ChannelKey, r.MessageID)
}

// InternalChatKey applies the -100 prefix transform to a bare internal chat
// id. Ids that already carry the prefix (negative in the link) pass through.
func InternalChatKey(id int64) string {
	if id > 0 {
		id = -(internalChatOffset + id)
	}
	return strconv.FormatInt(id, 10)
}
