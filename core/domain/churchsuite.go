// ABOUTME: ChurchSuite value object builds and sanitizes all upstream feed URLs
// ABOUTME: Only sanitized church names and recognized feed kinds ever reach a URL

package domain

import "strings"

// FeedKind selects which of the two supported public JSON feeds is requested.
type FeedKind string

const (
	// Events is the calendar feed of upcoming events.
	Events FeedKind = "events"

	// Groups is the small groups feed.
	Groups FeedKind = "groups"
)

// churchSuiteDomain is the root domain, minus the church name. Kept as a
// const so it can be changed in one place if ChurchSuite moves in future.
const churchSuiteDomain = ".churchsuite.com/"

// feedJSONPaths maps each feed kind to the path of its public JSON feed.
var feedJSONPaths = map[FeedKind]string{
	Events: "embed/calendar/json",
	Groups: "embed/smallgroups/json",
}

// itemPaths maps each feed kind to the public page path an item identifier
// can be appended to.
var itemPaths = map[FeedKind]string{
	Events: "events",
	Groups: "groups",
}

// ChurchSuite holds the sanitized church name and chosen feed kind for one
// tenant, and derives every URL the pipeline needs. The church name is the
// subdomain used to access ChurchSuite - e.g. from
// https://mychurch.churchsuite.com/ the name is "mychurch".
//
// Construction never fails: unrecognized feed kinds fall back to Events and a
// church name that sanitizes to "" simply produces URLs whose fetch will fail
// upstream, which the feed client handles.
type ChurchSuite struct {
	churchName string
	feedKind   FeedKind
}

// NewChurchSuite builds a ChurchSuite address from raw, untrusted input.
func NewChurchSuite(churchName, feedKind string) ChurchSuite {
	kind := FeedKind(SanitizeAlpha(feedKind))
	if _, ok := feedJSONPaths[kind]; !ok {
		kind = Events
	}
	return ChurchSuite{
		churchName: SanitizeAlpha(churchName),
		feedKind:   kind,
	}
}

// SanitizeAlpha strips everything except ASCII letters and lowercases the
// rest. It is total: any input yields a (possibly empty) valid result.
func SanitizeAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// ChurchName returns the sanitized church name.
func (cs ChurchSuite) ChurchName() string { return cs.churchName }

// FeedKind returns the feed kind chosen at construction.
func (cs ChurchSuite) FeedKind() FeedKind { return cs.feedKind }

// BaseURL returns the tenant's ChurchSuite site URL.
func (cs ChurchSuite) BaseURL() string {
	return "https://" + cs.churchName + churchSuiteDomain
}

// FeedJSONURL returns the JSON feed URL for the kind chosen at construction.
func (cs ChurchSuite) FeedJSONURL() string {
	return cs.BaseURL() + feedJSONPaths[cs.feedKind]
}

// EventsJSONURL returns the events JSON feed URL regardless of the
// configured kind.
func (cs ChurchSuite) EventsJSONURL() string {
	return cs.BaseURL() + feedJSONPaths[Events]
}

// GroupsJSONURL returns the groups JSON feed URL regardless of the
// configured kind.
func (cs ChurchSuite) GroupsJSONURL() string {
	return cs.BaseURL() + feedJSONPaths[Groups]
}

// EventsURL returns the public events page URL to which an event identifier
// can be appended to link to a single event.
func (cs ChurchSuite) EventsURL() string {
	return cs.BaseURL() + itemPaths[Events] + "/"
}

// GroupsURL returns the public groups page URL to which a group identifier
// can be appended to link to a single group.
func (cs ChurchSuite) GroupsURL() string {
	return cs.BaseURL() + itemPaths[Groups] + "/"
}
