// ABOUTME: Client fetches and decodes feed JSON with a transparent raw-response cache
// ABOUTME: All transport and decode failures collapse to a nil result, never an error

package feed

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"cs-embed-api/core/interfaces"
)

// rawCacheTTL is how long a raw upstream response stays valid. The feeds
// change rarely, so four hours trades freshness for far fewer upstream calls.
const rawCacheTTL = 4 * time.Hour

// Client performs the HTTP fetch of a Request, decodes the JSON body and
// transparently caches raw response bodies under the request's cache key.
//
// Fetch performs exactly one cache read, at most one network request and at
// most one cache write per call.
type Client struct {
	deps interfaces.Dependencies
}

// NewClient creates a feed client with the given dependencies.
func NewClient(deps interfaces.Dependencies) *Client {
	return &Client{deps: deps}
}

// Fetch returns the decoded feed records for the request, or nil when the
// upstream fetch or decode fails. Failure is a normal outcome here (bad
// church name, upstream outage, malformed body) and is reported to the
// caller as nil so it can degrade to fallback output; nothing is cached on
// failure, so a later call retries the network.
//
// A response decoding to an empty array is returned as-is but is not cached
// either, matching the treatment of a null result.
func (c *Client) Fetch(ctx context.Context, req *Request) []any {
	key := req.CacheKey()

	if body, err := c.deps.Cache.Get(ctx, key); err == nil && len(body) > 0 {
		if records := decodeRecords(body); records != nil {
			return records
		}
	}

	feedURL := req.ResolveURL()
	resp, err := c.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		c.logFetchFailure(feedURL, err.Error())
		return nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		c.logFetchFailure(feedURL, "unexpected status "+strconv.Itoa(resp.StatusCode()))
		return nil
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil || len(body) == 0 {
		c.logFetchFailure(feedURL, "empty or unreadable body")
		return nil
	}

	records := decodeRecords(body)
	if records == nil {
		c.logFetchFailure(feedURL, "invalid JSON body")
		return nil
	}

	if len(records) > 0 {
		// Ignore cache write errors; an unavailable store is a permanent miss.
		_ = c.deps.Cache.Set(ctx, key, body, rawCacheTTL)
	}

	return records
}

// decodeRecords unmarshals a feed body into untyped records. Returns nil for
// anything that is not a JSON array.
func decodeRecords(body []byte) []any {
	var records []any
	if err := json.Unmarshal(body, &records); err != nil {
		return nil
	}
	if records == nil {
		records = []any{}
	}
	return records
}

func (c *Client) logFetchFailure(feedURL, reason string) {
	if c.deps.Logger == nil {
		return
	}
	c.deps.Logger.Warn("feed fetch failed", map[string]interface{}{
		"url":    feedURL,
		"reason": reason,
	})
}
