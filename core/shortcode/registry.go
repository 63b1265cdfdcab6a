package shortcode

import "cs-embed-api/core/interfaces"

// Fragment names as they appear in the request path.
const (
	NameEventCards  = "event-cards"
	NameEventList   = "event-list"
	NameCalendar    = "calendar"
	NameSmallGroups = "smallgroups"
)

// New constructs the controller registered under name. pageURL is the
// address of the fragment itself, used by controllers that emit links back
// to their own endpoint. Returns false for an unknown name.
func New(name string, deps interfaces.Dependencies, atts map[string]string, pageURL string) (Controller, bool) {
	switch name {
	case NameEventCards:
		return NewEventCards(deps, atts), true
	case NameEventList:
		return NewEventList(deps, atts), true
	case NameCalendar:
		return NewCalendar(deps, atts, pageURL), true
	case NameSmallGroups:
		return NewSmallGroups(deps, atts), true
	default:
		return nil, false
	}
}
