package service

import (
	"regexp"
	"strconv"

	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/samber/lo"
)

// linkPattern matches message links in all supported forms:
//
//	https://t.me/<slug>/<messageID>
//	https://t.me/<slug>/<threadID>/<messageID>
//	https://t.me/c/<chatID>/<messageID>
//	https://t.me/c/<chatID>/<threadID>/<messageID>
//	https://telegram.me/... (historical domain)
//
// Scheme and domain are case-insensitive. When two trailing numbers are
// present the last one is the message id and the first is the thread id.
var linkPattern = regexp.MustCompile(`(?i)https?://(?:t\.me|telegram\.me)/(?:c/(-?\d+)|([A-Za-z0-9_]+))/(\d+)(?:/(\d+))?`)

// Parser extracts message references from free-form text.
type Parser struct{}

// New creates a new link parser
func New() *Parser {
	return &Parser{}
}

// Parse returns the references found in text, in order of appearance.
// Duplicates are preserved; deduplication is the cache's job. Text without
// any recognizable link yields an empty slice, never an error.
func (p *Parser) Parse(text string) []domain.Reference {
	matches := linkPattern.FindAllStringSubmatch(text, -1)

	return lo.FilterMap(matches, func(m []string, _ int) (domain.Reference, bool) {
		var channelKey string
		if m[1] != "" {
			id, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return domain.Reference{}, false
			}
			channelKey = domain.InternalChatKey(id)
		} else {
			channelKey = m[2]
		}

		// The trailing number is the message id; a preceding one is a
		// thread id and only locates the message within a topic.
		msgPart := m[3]
		if m[4] != "" {
			msgPart = m[4]
		}
		messageID, err := strconv.Atoi(msgPart)
		if err != nil || messageID <= 0 {
			return domain.Reference{}, false
		}

		return domain.Reference{
			ChannelKey: channelKey,
			MessageID:  messageID,
			RawLink:    m[0],
		}, true
	})
}
