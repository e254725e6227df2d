package xkindle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ygolovnia/xkindle"
)

func TestExtractionRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts allowed hosts and their subdomains", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://x.com/user/status/1",
			"https://twitter.com/user/status/1",
			"https://mobile.twitter.com/user/status/1",
			"https://www.x.com/user/article/123",
			"https://X.com/user/status/1",
		}

		for _, u := range urls {
			req := &xkindle.ExtractionRequest{SourceURL: u, Destination: "a@kindle.com"}
			assert.NoError(t, req.Validate(xkindle.DefaultAllowedHosts), u)
		}
	})

	t.Run("rejects disallowed hosts", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://example.com/user/status/1",
			"https://notx.com/user/status/1",
			"https://x.com.evil.net/user/status/1",
			"https://fakex.com/user/status/1",
		}

		for _, u := range urls {
			req := &xkindle.ExtractionRequest{SourceURL: u, Destination: "a@kindle.com"}
			err := req.Validate(xkindle.DefaultAllowedHosts)
			require.Error(t, err, u)
			assert.Equal(t, xkindle.EINVALID, xkindle.ErrorCode(err), u)
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		missingURL := &xkindle.ExtractionRequest{Destination: "a@kindle.com"}
		err := missingURL.Validate(xkindle.DefaultAllowedHosts)
		require.Error(t, err)
		assert.Equal(t, xkindle.EINVALID, xkindle.ErrorCode(err))

		missingDest := &xkindle.ExtractionRequest{SourceURL: "https://x.com/u/status/1"}
		err = missingDest.Validate(xkindle.DefaultAllowedHosts)
		require.Error(t, err)
		assert.Equal(t, xkindle.EINVALID, xkindle.ErrorCode(err))
	})

	t.Run("rejects malformed and relative URLs", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"://not-a-url",
			"/user/status/1",
			"x.com/user/status/1",
		}

		for _, u := range urls {
			req := &xkindle.ExtractionRequest{SourceURL: u, Destination: "a@kindle.com"}
			err := req.Validate(xkindle.DefaultAllowedHosts)
			require.Error(t, err, u)
			assert.Equal(t, xkindle.EINVALID, xkindle.ErrorCode(err), u)
		}
	})
}
