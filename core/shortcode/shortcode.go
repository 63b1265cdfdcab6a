// ABOUTME: Controllers orchestrate render-cache lookup, feed fetch and HTML assembly
// ABOUTME: Every controller degrades to the fallback fragment, never to an error

package shortcode

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"cs-embed-api/core/domain"
	"cs-embed-api/core/feed"
	"cs-embed-api/core/interfaces"
)

const (
	// renderKeyPrefix namespaces rendered-fragment cache entries, keeping them
	// disjoint from the raw feed-response cache.
	renderKeyPrefix = "cs_render_"

	// renderCacheTTL is shorter than the raw cache TTL so presentation changes
	// propagate faster than upstream data changes need to.
	renderCacheTTL = time.Hour
)

// FallbackHTML is returned whenever a fragment cannot be produced. It is the
// only output for the failure path and is never cached, so the next request
// retries the pipeline.
const FallbackHTML = `<div class="cs-fallback">Please try again later for this information</div>` + "\n"

// Controller renders one fragment shape end-to-end.
type Controller interface {
	Run(ctx context.Context) string
}

// shortcode is the embedded base of every concrete controller. Construction
// is cheap and performs no I/O, so a render-cache hit in Run skips the
// network entirely.
type shortcode struct {
	name   string
	deps   interfaces.Dependencies
	cs     domain.ChurchSuite
	req    *feed.Request
	client *feed.Client
	now    func() time.Time
}

func newShortcode(name string, deps interfaces.Dependencies, kind domain.FeedKind, atts map[string]string) shortcode {
	cs := domain.NewChurchSuite(atts["church_name"], string(kind))
	req := feed.NewRequest(cs, parseNumResults(atts), atts)
	return shortcode{
		name:   name,
		deps:   deps,
		cs:     cs,
		req:    req,
		client: feed.NewClient(deps),
		now:    time.Now,
	}
}

// parseNumResults reads the num_results attribute. Absent means 0 (all
// results); a value that is present but not numeric means the caller tried
// and failed, so a small safe limit of 3 applies; negatives clamp to 0.
func parseNumResults(atts map[string]string) int {
	raw, ok := atts["num_results"]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 3
	}
	if n < 0 {
		return 0
	}
	return n
}

// renderCacheKey derives the fragment cache key from the controller name,
// feed kind and fully-resolved feed URL, so any parameter change produces a
// distinct fragment entry.
func (s *shortcode) renderCacheKey() string {
	sum := sha1.Sum([]byte(s.name + ":" + string(s.cs.FeedKind()) + ":" + s.req.ResolveURL()))
	return renderKeyPrefix + hex.EncodeToString(sum[:])
}

// run is the shared pipeline: render-cache lookup, feed fetch, assembly,
// cache fill. assemble receives the decoded records and returns the fragment
// HTML, or "" when nothing can be rendered.
func (s *shortcode) run(ctx context.Context, assemble func([]any) string) string {
	key := s.renderCacheKey()

	if cached, err := s.deps.Cache.Get(ctx, key); err == nil && len(cached) > 0 {
		return string(cached)
	}

	records := s.client.Fetch(ctx, s.req)
	if records == nil {
		return FallbackHTML
	}

	output := assemble(records)
	if output == "" {
		return FallbackHTML
	}

	// Ignore cache write errors; an unavailable store is a permanent miss.
	_ = s.deps.Cache.Set(ctx, key, []byte(output), renderCacheTTL)
	return output
}
