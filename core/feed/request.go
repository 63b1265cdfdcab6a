// ABOUTME: Request composes the upstream feed URL from whitelisted parameters
// ABOUTME: The resolved URL is a pure function of its inputs and keys the raw cache

package feed

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"cs-embed-api/core/domain"
)

// cacheKeyPrefix namespaces raw feed-response cache entries.
const cacheKeyPrefix = "cs_integration_"

// permittedParams are the query keys the upstream embed API recognizes.
// Everything else is discarded without error.
// See https://github.com/ChurchSuite/churchsuite-api/blob/master/modules/embed.md
var permittedParams = map[string]struct{}{
	"merge":         {},
	"date_start":    {},
	"date_end":      {},
	"featured":      {},
	"category":      {},
	"categories":    {},
	"site":          {},
	"sites":         {},
	"event":         {},
	"events":        {},
	"q":             {},
	"embed_signup":  {},
	"public_signup": {},
	"sequence":      {},
	"page":          {},
}

// paramValuePattern accepts word characters and hyphens only, which covers
// every legal value shape (ids, yyyy-mm-dd dates, merge modes, search terms
// without spaces). Anything else is silently dropped.
var paramValuePattern = regexp.MustCompile(`^[\w-]+$`)

// Request is a pending fetch of one feed: address, result limit and accepted
// query parameters. Building a Request performs no I/O; Client.Fetch executes
// it. The resolved URL is deterministic for identical inputs, which is the
// contract that makes raw-response cache hits possible.
type Request struct {
	cs         domain.ChurchSuite
	numResults int
	paramKeys  []string
	params     map[string]string
}

// NewRequest builds a request for the given address, applying the result
// limit and the attribute map through the same sanitizing rules as the
// setter methods.
func NewRequest(cs domain.ChurchSuite, numResults int, atts map[string]string) *Request {
	r := &Request{cs: cs, params: make(map[string]string)}
	r.SetNumResults(numResults)
	r.AddParams(atts)
	return r
}

// ChurchSuite returns the address this request will fetch from.
func (r *Request) ChurchSuite() domain.ChurchSuite { return r.cs }

// SetNumResults sets the result-count limit. Zero means unbounded; negative
// values are ignored, keeping the prior limit.
func (r *Request) SetNumResults(n int) {
	if n >= 0 {
		r.numResults = n
	}
}

// NumResults returns the current result-count limit.
func (r *Request) NumResults() int { return r.numResults }

// AddParam accepts one query parameter. The key must be on the whitelist
// after trimming and lowercasing, and the value must match ^[\w-]+$ after
// trimming and lowercasing; rejected pairs are dropped silently. A repeated
// key overwrites the previously stored value.
func (r *Request) AddParam(key, value string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := permittedParams[key]; !ok {
		return
	}
	value = strings.ToLower(strings.TrimSpace(value))
	if !paramValuePattern.MatchString(value) {
		return
	}
	if _, exists := r.params[key]; !exists {
		r.paramKeys = append(r.paramKeys, key)
	}
	r.params[key] = value
}

// AddParams accepts a batch of parameters via AddParam. Map iteration order
// is not deterministic in Go, so keys are applied in sorted order to keep the
// resolved URL - and therefore the cache key - stable for identical input.
func (r *Request) AddParams(atts map[string]string) {
	keys := make([]string, 0, len(atts))
	for k := range atts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.AddParam(k, atts[k])
	}
}

// Param returns the stored value for a key and whether it was accepted.
func (r *Request) Param(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// ResolveURL composes the full feed URL: the JSON endpoint, the num_results
// limit, then each accepted parameter in the order it was first accepted.
// It is pure and always succeeds.
func (r *Request) ResolveURL() string {
	var b strings.Builder
	b.WriteString(r.cs.FeedJSONURL())
	b.WriteString("?num_results=")
	b.WriteString(strconv.Itoa(r.numResults))
	for _, k := range r.paramKeys {
		b.WriteString("&")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(r.params[k])
	}
	return b.String()
}

// CacheKey derives the raw-response cache key from the resolved URL. Two
// requests resolving to the same URL always share a key.
func (r *Request) CacheKey() string {
	sum := sha1.Sum([]byte(r.ResolveURL()))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
