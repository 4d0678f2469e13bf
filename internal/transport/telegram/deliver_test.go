package telegram

import (
	"errors"
	"strings"
	"testing"

	resolveDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText_Short(t *testing.T) {
	chunks := splitText("hello", 4000)

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello", chunks[0])
}

func TestSplitText_Empty(t *testing.T) {
	chunks := splitText("", 4000)

	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}

func TestSplitText_Long(t *testing.T) {
	text := strings.Repeat("a", 9500)

	chunks := splitText(text, 4000)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4000)
	assert.Len(t, chunks[1], 4000)
	assert.Len(t, chunks[2], 1500)
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitText_RuneSafe(t *testing.T) {
	text := strings.Repeat("é", 10)

	chunks := splitText(text, 4)

	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.True(t, len([]rune(chunk)) <= 4)
	}
}

func TestClampCaption(t *testing.T) {
	short := "a caption"
	assert.Equal(t, short, clampCaption(short))

	long := strings.Repeat("x", 2000)
	clamped := clampCaption(long)
	assert.Len(t, []rune(clamped), maxCaptionLen)
	assert.True(t, strings.HasSuffix(clamped, "..."))
}

func TestFailureText(t *testing.T) {
	err := errors.New("boom")

	cases := map[resolveDomain.FailureKind]string{
		resolveDomain.FailureKindPermanent:     permanentFailureText,
		resolveDomain.FailureKindTransient:     transientFailureText,
		resolveDomain.FailureKindConfiguration: configurationFailureText,
	}
	for kind, want := range cases {
		assert.Equal(t, want, failureText(&resolveDomain.Failure{Kind: kind, Err: err}))
	}
}
