package timezone

import (
	"regexp"
	"strings"
	"sync"
	"time"
)

// regionCityRegex matches "Region/City"-shaped substrings such as
// "Asia/Jakarta" or "America/New_York" inside free text.
var regionCityRegex = regexp.MustCompile(`[A-Za-z]+(?:_[A-Za-z]+)*/[A-Za-z]+(?:[_\-+][A-Za-z0-9]+)*`)

// Resolver validates IANA zone identifiers and extracts zones from free-text
// location strings. Validation results and loaded locations are cached per
// candidate string; entries are write-once, a concurrent race simply loads
// the same location twice.
type Resolver struct {
	mu    sync.RWMutex
	valid map[string]bool
	locs  map[string]*time.Location
	hints []Hint
}

func NewResolver() *Resolver {
	return &Resolver{
		valid: make(map[string]bool),
		locs:  make(map[string]*time.Location),
		hints: DefaultHints(),
	}
}

// NewResolverWithHints builds a resolver with a custom hint list, evaluated
// in the given order.
func NewResolverWithHints(hints []Hint) *Resolver {
	r := NewResolver()
	r.hints = hints
	return r
}

// IsValidZone reports whether candidate names a loadable time zone.
func (r *Resolver) IsValidZone(candidate string) bool {
	return r.Location(candidate) != nil
}

// Location returns the cached *time.Location for name, or nil when the name
// is empty or does not resolve.
func (r *Resolver) Location(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	r.mu.RLock()
	ok, seen := r.valid[name]
	loc := r.locs[name]
	r.mu.RUnlock()
	if seen {
		if !ok {
			return nil
		}
		return loc
	}

	loc, err := time.LoadLocation(name)

	r.mu.Lock()
	r.valid[name] = err == nil
	if err == nil {
		r.locs[name] = loc
	}
	r.mu.Unlock()

	if err != nil {
		return nil
	}
	return loc
}

// ExtractZoneToken pulls a zone identifier out of free text. It tries, in
// order: the text itself as an identifier, any "Region/City"-shaped
// substring, then the keyword hint list. Returns "" when nothing matches.
func (r *Resolver) ExtractZoneToken(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if r.IsValidZone(text) {
		return text
	}

	for _, candidate := range regionCityRegex.FindAllString(text, -1) {
		if r.IsValidZone(candidate) {
			return candidate
		}
	}

	lower := strings.ToLower(text)
	for _, h := range r.hints {
		if strings.Contains(lower, h.Keyword) {
			return h.Zone
		}
	}

	return ""
}

// ResolveForEmployee determines the zone for an employee from their free-text
// primary location, falling back to the organization zone. Returns "" when
// neither resolves; callers then degrade to naive local-time arithmetic
// instead of failing the attendance flow.
func (r *Resolver) ResolveForEmployee(primaryLocation, organizationZone string) string {
	if zone := r.ExtractZoneToken(primaryLocation); zone != "" {
		return zone
	}
	if r.IsValidZone(organizationZone) {
		return strings.TrimSpace(organizationZone)
	}
	return ""
}
