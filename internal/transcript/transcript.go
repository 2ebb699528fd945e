// Package transcript maps playback time onto transcript segments and
// prepares segment text for display.
package transcript

import (
	"fmt"
	"html"
	"regexp"
	"sort"
	"strings"
)

// Item is a single transcript segment. Start and End are seconds from the
// beginning of the video; Start is inclusive, End exclusive.
type Item struct {
	ID    string  `json:"id"`
	Start float64 `json:"startTime"`
	End   float64 `json:"endTime"`
	Text  string  `json:"text"`
}

// Validate checks that items are ordered by start time, each interval is
// non-empty, and no two intervals overlap. Adjacent intervals may touch.
func Validate(items []Item) error {
	for i, it := range items {
		if it.Start >= it.End {
			return fmt.Errorf("segment %q: start %.3f not before end %.3f", it.ID, it.Start, it.End)
		}
		if i > 0 && items[i-1].End > it.Start {
			return fmt.Errorf("segment %q overlaps previous segment", it.ID)
		}
	}
	return nil
}

// Sanitize returns items in a form Validate accepts: sorted by start time,
// with empty and overlapping intervals dropped. Valid input comes back
// unchanged. Backend transcripts pass through here before any binary search
// runs over them.
func Sanitize(items []Item) []Item {
	if Validate(items) == nil {
		return items
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Start < it.End {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	kept := out[:0]
	for _, it := range out {
		if len(kept) > 0 && kept[len(kept)-1].End > it.Start {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// ActiveSegment returns the segment whose interval contains t, defined as
// Start <= t < End. Times before the first segment, in a gap, or at or past
// the last end yield no segment.
func ActiveSegment(items []Item, t float64) (Item, bool) {
	// First segment starting after t; the candidate is the one before it.
	i := sort.Search(len(items), func(i int) bool { return items[i].Start > t })
	if i == 0 {
		return Item{}, false
	}
	if it := items[i-1]; t < it.End {
		return it, true
	}
	return Item{}, false
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of
// term in <mark>. The term is treated literally: regex metacharacters in user
// input must not reach the matcher as a pattern. Matching runs on the raw
// text and each fragment is escaped on the way out, so a term can never
// split an escape entity.
func Highlight(text, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return html.EscapeString(text)
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return html.EscapeString(text)
	}

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
