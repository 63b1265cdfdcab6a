package shortcode

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"cs-embed-api/core/interfaces"
)

// fakeCache is an in-memory Cache test double.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.entries[key]
	if !ok {
		return nil, errors.New("key not found")
	}
	return value, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

// renderedEntries counts cached rendered fragments, ignoring raw feed bodies.
func (c *fakeCache) renderedEntries() int {
	n := 0
	for key := range c.entries {
		if strings.HasPrefix(key, renderKeyPrefix) {
			n++
		}
	}
	return n
}

// fakeHTTPClient serves a canned body and counts fetches.
type fakeHTTPClient struct {
	status  int
	body    string
	err     error
	fetches int
}

func (c *fakeHTTPClient) Get(_ context.Context, _ string) (interfaces.Response, error) {
	c.fetches++
	if c.err != nil {
		return nil, c.err
	}
	return &fakeResponse{status: c.status, body: c.body}, nil
}

type fakeResponse struct {
	status int
	body   string
}

func (r *fakeResponse) StatusCode() int        { return r.status }
func (r *fakeResponse) Body() io.ReadCloser    { return io.NopCloser(bytes.NewReader([]byte(r.body))) }
func (r *fakeResponse) Header(_ string) string { return "" }

func testDeps(cache *fakeCache, httpClient *fakeHTTPClient) interfaces.Dependencies {
	return interfaces.Dependencies{Cache: cache, HTTPClient: httpClient}
}

func TestParseNumResults(t *testing.T) {
	tests := []struct {
		name string
		atts map[string]string
		want int
	}{
		{"absent means all results", map[string]string{}, 0},
		{"numeric value", map[string]string{"num_results": "7"}, 7},
		{"zero is valid", map[string]string{"num_results": "0"}, 0},
		{"non-numeric falls back to 3", map[string]string{"num_results": "lots"}, 3},
		{"negative clamps to 0", map[string]string{"num_results": "-5"}, 0},
		{"surrounding whitespace", map[string]string{"num_results": " 4 "}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseNumResults(tt.atts); got != tt.want {
				t.Errorf("parseNumResults(%v) = %d, want %d", tt.atts, got, tt.want)
			}
		})
	}
}

func TestEventCards_RendersFetchedEvents(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{status: 200, body: `[{"name": "Picnic"}, {"name": "Bake Sale"}]`}
	controller := NewEventCards(testDeps(cache, httpClient), map[string]string{"church_name": "mychurch"})

	output := controller.Run(context.Background())

	if !strings.Contains(output, `class="cs-event-cards cs-row"`) {
		t.Errorf("output missing wrapper: %q", output)
	}
	if !strings.Contains(output, "Picnic") || !strings.Contains(output, "Bake Sale") {
		t.Errorf("output missing events: %q", output)
	}
}

func TestRun_SecondCallHitsRenderCacheWithoutFetching(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{status: 200, body: `[{"name": "Picnic"}]`}
	atts := map[string]string{"church_name": "mychurch", "num_results": "3"}
	deps := testDeps(cache, httpClient)

	first := NewEventCards(deps, atts).Run(context.Background())
	second := NewEventCards(deps, atts).Run(context.Background())

	if first != second {
		t.Error("second run should return byte-identical output")
	}
	if httpClient.fetches != 1 {
		t.Errorf("fetches = %d, want 1 (second run must not hit the network)", httpClient.fetches)
	}
}

func TestRun_FallbackOnFetchFailureIsNotCached(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{err: errors.New("connection refused")}
	deps := testDeps(cache, httpClient)
	atts := map[string]string{"church_name": "mychurch"}

	output := NewEventCards(deps, atts).Run(context.Background())

	if output != FallbackHTML {
		t.Errorf("Run() = %q, want fallback", output)
	}
	if cache.renderedEntries() != 0 {
		t.Error("fallback output must not be cached, so a later call retries")
	}

	// A later call does retry the network.
	NewEventCards(deps, atts).Run(context.Background())
	if httpClient.fetches != 2 {
		t.Errorf("fetches = %d, want 2", httpClient.fetches)
	}
}

func TestRun_DifferentControllersDoNotShareCacheEntries(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{status: 200, body: `[{"name": "Picnic"}]`}
	deps := testDeps(cache, httpClient)
	atts := map[string]string{"church_name": "mychurch"}

	cards := NewEventCards(deps, atts).Run(context.Background())
	list := NewEventList(deps, atts).Run(context.Background())

	if cards == list {
		t.Error("different controllers should render different fragments")
	}
	if cache.renderedEntries() != 2 {
		t.Errorf("rendered cache entries = %d, want 2", cache.renderedEntries())
	}
}

func TestSmallGroups_RendersGroupsFeed(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{status: 200, body: `[{"name": "Alpha Group", "frequency": "weekly", "day": 2}]`}
	controller := NewSmallGroups(testDeps(cache, httpClient), map[string]string{"church_name": "mychurch"})

	output := controller.Run(context.Background())

	if !strings.Contains(output, `class="cs-smallgroups cs-row"`) {
		t.Errorf("output missing wrapper: %q", output)
	}
	if !strings.Contains(output, "Alpha Group") {
		t.Errorf("output missing group: %q", output)
	}
	if !strings.Contains(output, "Weekly on Tuesday") {
		t.Errorf("output missing schedule: %q", output)
	}
}

func TestEventList_GroupsEventsByDate(t *testing.T) {
	cache := newFakeCache()
	httpClient := &fakeHTTPClient{status: 200, body: `[
		{"name": "Morning Prayer", "datetime_start": "2025-06-10 08:00:00"},
		{"name": "Evening Service", "datetime_start": "2025-06-10 18:30:00"},
		{"name": "Picnic", "datetime_start": "2025-06-15 10:00:00"}
	]`}
	now := func() time.Time { return time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC) }
	controller := newEventList(testDeps(cache, httpClient), map[string]string{"church_name": "mychurch"}, now)

	output := controller.Run(context.Background())

	// Two distinct dates, so exactly two date blocks.
	if n := strings.Count(output, `<div class="cs-date">`); n != 2 {
		t.Errorf("date blocks = %d, want 2", n)
	}
	if n := strings.Count(output, `class="cs-event-row"`); n != 3 {
		t.Errorf("event rows = %d, want 3", n)
	}
}

func TestEventList_DefaultsDateEndWhenAbsent(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC) }
	controller := newEventList(testDeps(newFakeCache(), &fakeHTTPClient{}), map[string]string{"church_name": "mychurch"}, now)

	url := controller.req.ResolveURL()
	if !strings.Contains(url, "date_end=2025-06-14") {
		t.Errorf("resolved URL %q should default date_end to five days ahead", url)
	}
}

func TestEventList_KeepsCallerDateEnd(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC) }
	atts := map[string]string{"church_name": "mychurch", "date_end": "2025-07-01"}
	controller := newEventList(testDeps(newFakeCache(), &fakeHTTPClient{}), atts, now)

	url := controller.req.ResolveURL()
	if !strings.Contains(url, "date_end=2025-07-01") {
		t.Errorf("resolved URL %q should keep the caller's date_end", url)
	}
}

func TestNew_DispatchesKnownNames(t *testing.T) {
	deps := testDeps(newFakeCache(), &fakeHTTPClient{})
	atts := map[string]string{"church_name": "mychurch"}

	for _, name := range []string{NameEventCards, NameEventList, NameCalendar, NameSmallGroups} {
		controller, ok := New(name, deps, atts, "/fragments/"+name)
		if !ok || controller == nil {
			t.Errorf("New(%q) should return a controller", name)
		}
	}

	if _, ok := New("unknown", deps, atts, "/fragments/unknown"); ok {
		t.Error("New should reject unknown names")
	}
}
