package service

import (
	"testing"

	"github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_PublicChannelLink(t *testing.T) {
	p := New()

	refs := p.Parse("check https://t.me/examplechan/42")

	require.Len(t, refs, 1)
	assert.Equal(t, "examplechan", refs[0].ChannelKey)
	assert.Equal(t, 42, refs[0].MessageID)
	assert.Equal(t, "https://t.me/examplechan/42", refs[0].RawLink)
}

func TestParser_InternalChatLink(t *testing.T) {
	p := New()

	refs := p.Parse("https://t.me/c/1234567890/55")

	require.Len(t, refs, 1)
	assert.Equal(t, "-1001234567890", refs[0].ChannelKey)
	assert.Equal(t, 55, refs[0].MessageID)
}

func TestParser_ThreadedLinks(t *testing.T) {
	p := New()

	refs := p.Parse("https://t.me/c/1234567890/7/55 and https://t.me/examplechan/7/42")

	require.Len(t, refs, 2)
	// The trailing number is the message id, not the thread id
	assert.Equal(t, 55, refs[0].MessageID)
	assert.Equal(t, "-1001234567890", refs[0].ChannelKey)
	assert.Equal(t, 42, refs[1].MessageID)
	assert.Equal(t, "examplechan", refs[1].ChannelKey)
}

func TestParser_HistoricalDomain(t *testing.T) {
	p := New()

	refs := p.Parse("https://telegram.me/examplechan/42")

	require.Len(t, refs, 1)
	assert.Equal(t, "examplechan", refs[0].ChannelKey)
	assert.Equal(t, 42, refs[0].MessageID)
}

func TestParser_CaseInsensitiveDomain(t *testing.T) {
	p := New()

	refs := p.Parse("HTTPS://T.ME/examplechan/42")

	require.Len(t, refs, 1)
	assert.Equal(t, "examplechan", refs[0].ChannelKey)
}

func TestParser_NoMatches(t *testing.T) {
	p := New()

	for _, text := range []string{
		"",
		"hello world",
		"https://example.com/chan/42",
		"https://t.me/examplechan",
		"https://t.me/examplechan/notanumber",
		"https://t.me/examplechan/0",
	} {
		assert.Empty(t, p.Parse(text), "text: %q", text)
	}
}

func TestParser_OrderAndDuplicatesPreserved(t *testing.T) {
	p := New()

	refs := p.Parse("https://t.me/a/1 then https://t.me/b/2 then https://t.me/a/1")

	require.Len(t, refs, 3)
	assert.Equal(t, "a", refs[0].ChannelKey)
	assert.Equal(t, "b", refs[1].ChannelKey)
	assert.Equal(t, "a", refs[2].ChannelKey)
	assert.Equal(t, refs[0].Key(), refs[2].Key())
}

func TestParser_CanonicalRoundTrip(t *testing.T) {
	p := New()

	for _, link := range []string{
		"https://t.me/examplechan/42",
		"https://t.me/c/1234567890/55",
	} {
		refs := p.Parse(link)
		require.Len(t, refs, 1, "link: %q", link)

		again := p.Parse(refs[0].CanonicalLink())
		require.Len(t, again, 1, "canonical of %q", link)
		assert.Equal(t, refs[0].Key(), again[0].Key())
	}
}

func TestReference_ChatID(t *testing.T) {
	pub := domain.Reference{ChannelKey: "examplechan", MessageID: 1}
	assert.Equal(t, "@examplechan", pub.ChatID())

	priv := domain.Reference{ChannelKey: "-1001234567890", MessageID: 1}
	assert.Equal(t, int64(-1001234567890), priv.ChatID())
}

func TestInternalChatKey_NegativePassthrough(t *testing.T) {
	assert.Equal(t, "-1001234567890", domain.InternalChatKey(-1001234567890))
}
