// Package deeplink models the shareable location of the viewer and the
// navigable history stack behind back/forward navigation.
//
// A Location is the query-string form of the viewer's externally observable
// state: "project=<id>" while a project modal is open, empty while closed.
// History replicates browser semantics: every direct transition pushes a new
// entry (never replaces), and back/forward replay prior locations.
package deeplink

import (
	"net/url"
	"strings"
)

// ProjectParam is the query parameter carrying the open project id.
const ProjectParam = "project"

// fallbackProjectID is used when a card with an empty id is opened; the link
// still needs a present (non-empty) project value to mean "open".
const fallbackProjectID = "p"

// Location is an immutable deep-link state. The zero value is the closed
// (empty query) location.
type Location struct {
	values url.Values
}

// ParseLocation parses a raw query string ("project=p3&x=1"). A leading "?"
// is tolerated. Malformed pairs are dropped, not an error: a bad link means
// "nothing deep-linked", never a failure.
func ParseLocation(raw string) Location {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return Location{}
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return Location{}
	}
	return Location{values: v}
}

// Project returns the project id carried by the location and whether the
// parameter is present. Presence with an empty value counts as absent.
func (l Location) Project() (string, bool) {
	if l.values == nil {
		return "", false
	}
	id := l.values.Get(ProjectParam)
	if id == "" {
		return "", false
	}
	return id, true
}

// WithProject derives a location whose project parameter is set to id,
// preserving unrelated parameters. An empty id maps to the fallback value so
// the parameter stays observable.
func (l Location) WithProject(id string) Location {
	if id == "" {
		id = fallbackProjectID
	}
	v := l.cloneValues()
	v.Set(ProjectParam, id)
	return Location{values: v}
}

// WithoutProject derives a location with the project parameter removed,
// preserving unrelated parameters.
func (l Location) WithoutProject() Location {
	if l.values == nil {
		return Location{}
	}
	v := l.cloneValues()
	v.Del(ProjectParam)
	if len(v) == 0 {
		return Location{}
	}
	return Location{values: v}
}

// String renders the canonical query-string form. The closed location renders
// as "".
func (l Location) String() string {
	if len(l.values) == 0 {
		return ""
	}
	return l.values.Encode()
}

// Equal reports whether two locations encode the same query state.
func (l Location) Equal(other Location) bool {
	return l.String() == other.String()
}

func (l Location) cloneValues() url.Values {
	v := make(url.Values, len(l.values)+1)
	for k, vals := range l.values {
		v[k] = append([]string(nil), vals...)
	}
	return v
}
