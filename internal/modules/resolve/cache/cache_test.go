package cache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	contentDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/content/domain"
	linkDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/link/domain"
	resolveDomain "github.com/reshetovitsme/tg-restricted-relay/internal/modules/resolve/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(n int) linkDomain.Key {
	return linkDomain.Key{ChannelKey: "examplechan", MessageID: n}
}

func TestCache_ContentRoundTrip(t *testing.T) {
	c := New(10, time.Minute)

	c.PutContent(key(1), contentDomain.Content{Kind: contentDomain.KindText, Body: "hello"})

	entry, ok := c.Get(key(1))
	require.True(t, ok)
	require.NotNil(t, entry.Content)
	assert.Equal(t, "hello", entry.Content.Body)
	assert.Nil(t, entry.Failure)
}

func TestCache_Miss(t *testing.T) {
	c := New(10, time.Minute)

	_, ok := c.Get(key(404))
	assert.False(t, ok)
}

func TestCache_PermanentFailureStored(t *testing.T) {
	c := New(10, time.Minute)

	c.PutFailure(key(2), &resolveDomain.Failure{
		Kind: resolveDomain.FailureKindPermanent,
		Err:  errors.New("message deleted"),
	})

	entry, ok := c.Get(key(2))
	require.True(t, ok)
	require.NotNil(t, entry.Failure)
	assert.Equal(t, resolveDomain.FailureKindPermanent, entry.Failure.Kind)
}

func TestCache_NonPermanentFailuresDropped(t *testing.T) {
	c := New(10, time.Minute)

	c.PutFailure(key(3), &resolveDomain.Failure{
		Kind: resolveDomain.FailureKindTransient,
		Err:  errors.New("timeout"),
	})
	c.PutFailure(key(4), &resolveDomain.Failure{
		Kind: resolveDomain.FailureKindConfiguration,
		Err:  errors.New("needs full access"),
	})
	c.PutFailure(key(5), nil)

	assert.Zero(t, c.Len())
}

func TestCache_OneEntryPerKey(t *testing.T) {
	c := New(10, time.Minute)

	c.PutContent(key(1), contentDomain.Content{Kind: contentDomain.KindText, Body: "first"})
	c.PutContent(key(1), contentDomain.Content{Kind: contentDomain.KindText, Body: "second"})

	assert.Equal(t, 1, c.Len())
	entry, _ := c.Get(key(1))
	assert.Equal(t, "second", entry.Content.Body)
}

func TestCache_Bounded(t *testing.T) {
	c := New(3, time.Minute)

	for i := 1; i <= 10; i++ {
		c.PutContent(key(i), contentDomain.Content{Kind: contentDomain.KindText, Body: fmt.Sprint(i)})
	}

	assert.Equal(t, 3, c.Len())
	// Oldest entries are the ones evicted
	_, ok := c.Get(key(1))
	assert.False(t, ok)
	_, ok = c.Get(key(10))
	assert.True(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	c := New(10, 20*time.Millisecond)

	c.PutContent(key(1), contentDomain.Content{Kind: contentDomain.KindText, Body: "short-lived"})
	_, ok := c.Get(key(1))
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)

	_, ok = c.Get(key(1))
	assert.False(t, ok)
}
