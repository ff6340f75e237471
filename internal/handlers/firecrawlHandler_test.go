package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirecrawlHandler(t *testing.T) {
	t.Run("creates handler with api key", func(t *testing.T) {
		handler, err := NewFirecrawlHandler("fc-test-key", "")
		require.NoError(t, err)
		assert.NotNil(t, handler)
		assert.Equal(t, DefaultScrapeTimeout, handler.timeout)
	})

	t.Run("rejects empty api key", func(t *testing.T) {
		handler, err := NewFirecrawlHandler("", "")
		assert.Error(t, err)
		assert.Nil(t, handler)
	})
}

func TestFirecrawlHandler_SetTimeout(t *testing.T) {
	handler, err := NewFirecrawlHandler("fc-test-key", "")
	require.NoError(t, err)

	handler.SetTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, handler.timeout)
}

func TestFirecrawlHandler_ScrapeHomepage_InvalidURL(t *testing.T) {
	handler, err := NewFirecrawlHandler("fc-test-key", "")
	require.NoError(t, err)

	_, err = handler.ScrapeHomepage("http://")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid website URL")
}
