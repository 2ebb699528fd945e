// Package search owns the query state machine: it reconciles text, topic,
// filter, and pagination changes into exactly one authoritative backend
// request at a time.
package search

import "strings"

// Page sizes offered by the results-per-page selector.
var PageSizes = []int{12, 24, 36}

// DefaultPageSize is the grid size used until the user picks another.
const DefaultPageSize = 12

// FilterSet narrows search results. The zero value means no constraint;
// empty strings and the "any" placeholder both normalize to absence.
type FilterSet struct {
	Duration   string // short, medium, long
	UploadDate string // day, week, month, year
	Language   string
	MinViews   int
}

// Normalize maps placeholder values to absence and clamps MinViews.
func (f FilterSet) Normalize() FilterSet {
	f.Duration = normalizeFilterValue(f.Duration)
	f.UploadDate = normalizeFilterValue(f.UploadDate)
	f.Language = normalizeFilterValue(f.Language)
	if f.MinViews < 0 {
		f.MinViews = 0
	}
	return f
}

// IsZero reports whether no filter is active.
func (f FilterSet) IsZero() bool {
	return f == FilterSet{}
}

func normalizeFilterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "any") {
		return ""
	}
	return v
}

// Mode is the dispatch branch resolved once per state change.
type Mode int

const (
	// ModeText calls the semantic search endpoint; an empty query acts as
	// "browse all". Text takes precedence over a selected topic.
	ModeText Mode = iota
	// ModeTopic calls the topic-browse endpoint.
	ModeTopic
)

// QueryState is the full search state. Text and TopicID are independent
// dimensions; Mode decides which one drives the request.
type QueryState struct {
	Text     string
	TopicID  string
	Filters  FilterSet
	Page     int
	PageSize int
}

// DefaultState is the unfiltered first page: an empty-query search.
func DefaultState() QueryState {
	return QueryState{Page: 1, PageSize: DefaultPageSize}
}

// Mode resolves the dispatch branch for this state.
func (s QueryState) Mode() Mode {
	if strings.TrimSpace(s.Text) != "" {
		return ModeText
	}
	if s.TopicID != "" {
		return ModeTopic
	}
	return ModeText
}

// Update is a partial state change; nil fields are left untouched.
type Update struct {
	Text     *string
	TopicID  *string
	Filters  *FilterSet
	Page     *int
	PageSize *int
}

// String returns a pointer update for a text or topic field.
func String(v string) *string { return &v }

// Int returns a pointer update for a page or page-size field.
func Int(v int) *int { return &v }

// apply merges an update into prev. Any change to text, topic, or filters
// invalidates pagination and resets to page 1; page navigation outside
// [1, totalPages] is rejected. totalPages <= 0 means the total is not yet
// known, in which case only the lower bound is enforced. The second return
// is false when the update changed nothing.
func apply(prev QueryState, u Update, totalPages int) (QueryState, bool) {
	next := prev
	reset := false

	if u.Text != nil {
		if t := strings.TrimSpace(*u.Text); t != next.Text {
			next.Text = t
			reset = true
		}
	}
	if u.TopicID != nil && *u.TopicID != next.TopicID {
		next.TopicID = *u.TopicID
		reset = true
	}
	if u.Filters != nil {
		if f := u.Filters.Normalize(); f != next.Filters {
			next.Filters = f
			reset = true
		}
	}
	if u.PageSize != nil && *u.PageSize != next.PageSize && validPageSize(*u.PageSize) {
		next.PageSize = *u.PageSize
		reset = true
	}

	if reset {
		next.Page = 1
		return next, true
	}

	if u.Page != nil && *u.Page != next.Page {
		p := *u.Page
		if p < 1 || (totalPages > 0 && p > totalPages) {
			return prev, false
		}
		next.Page = p
		return next, true
	}

	return prev, false
}

func validPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}
