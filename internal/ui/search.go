package ui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tsnthiago/viewstats/internal/search"
	"github.com/tsnthiago/viewstats/internal/taxonomy"
)

// SearchPage carries everything the results page renders. Tree may be nil
// when the taxonomy failed to load; TreeErr switches the sidebar to its
// error state.
type SearchPage struct {
	Snapshot search.Snapshot
	Tree     []taxonomy.Node
	TreeErr  bool
}

// Filter option sets offered by the refinement form.
var (
	durationOptions   = []string{"short", "medium", "long"}
	uploadDateOptions = []string{"day", "week", "month", "year"}
	languageOptions   = []string{"en", "es", "pt", "fr", "de"}
	minViewsOptions   = []int{1000, 10000, 100000, 1000000}
)

// RenderSearch renders the results page: sidebar, filter bar, card grid,
// and pagination.
func RenderSearch(p SearchPage) string {
	st := p.Snapshot.State

	var b strings.Builder
	OpenPage(&b, pageTitle(st), st.Text)

	b.WriteString(`<div class="page">`)
	if p.TreeErr {
		RenderSidebarError(&b)
	} else {
		RenderSidebar(&b, p.Tree, st.TopicID)
	}

	b.WriteString(`<main class="results">`)
	renderResultBar(&b, p.Snapshot)
	renderFilterForm(&b, st)

	switch p.Snapshot.Status {
	case search.StatusFailed:
		b.WriteString(`<div class="error-box"><p>` + Escape(search.ErrorMessage) + `</p>` +
			`<a class="retry" href="` + EscapeAttr(searchURL(st, st.Page)) + `">Retry</a></div>`)
	case search.StatusNoResults:
		b.WriteString(`<div class="empty-box"><p>No videos matched your search.</p>` +
			`<p>Try a broader query or remove some filters.</p></div>`)
	default:
		b.WriteString(`<div class="grid">`)
		showRank := strings.TrimSpace(st.Text) != ""
		for _, v := range p.Snapshot.Videos {
			RenderVideoCard(&b, v, showRank)
		}
		b.WriteString(`</div>`)
		renderPager(&b, st, p.Snapshot.TotalPages())
	}

	b.WriteString(`</main></div>`)
	ClosePage(&b)
	return b.String()
}

func pageTitle(st search.QueryState) string {
	if t := strings.TrimSpace(st.Text); t != "" {
		return "Results for " + t
	}
	if st.TopicID != "" {
		parts := strings.Split(st.TopicID, taxonomy.Separator)
		return parts[len(parts)-1]
	}
	return "Browse"
}

func renderResultBar(b *strings.Builder, snap search.Snapshot) {
	b.WriteString(`<div class="result-bar">`)
	switch snap.Status {
	case search.StatusReady:
		fmt.Fprintf(b, `<span class="result-count">%d videos found</span>`, snap.Total)
	case search.StatusLoading:
		b.WriteString(`<span class="result-count">Loading...</span>`)
	}

	b.WriteString(`<form class="page-size" action="/search" method="get">`)
	writeStateInputs(b, snap.State, false)
	b.WriteString(`<label>Per page <select name="pageSize" onchange="this.form.submit()">`)
	for _, n := range search.PageSizes {
		sel := ""
		if n == snap.State.PageSize {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%d"%s>%d</option>`, n, sel, n)
	}
	b.WriteString(`</select></label></form></div>`)
}

func renderFilterForm(b *strings.Builder, st search.QueryState) {
	b.WriteString(`<form class="filters" action="/search" method="get">`)
	writeStateInputs(b, st, true)

	writeSelect(b, "duration", "Duration", st.Filters.Duration, durationOptions, filterLabel)
	writeSelect(b, "uploadDate", "Upload date", st.Filters.UploadDate, uploadDateOptions, uploadDateLabel)
	writeSelect(b, "language", "Language", st.Filters.Language, languageOptions, languageLabel)

	b.WriteString(`<label>Min views <select name="minViews">`)
	sel := ""
	if st.Filters.MinViews == 0 {
		sel = " selected"
	}
	fmt.Fprintf(b, `<option value=""%s>any</option>`, sel)
	for _, n := range minViewsOptions {
		sel = ""
		if n == st.Filters.MinViews {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%d"%s>%s+</option>`, n, sel, FormatCount(int64(n)))
	}
	b.WriteString(`</select></label>`)
	b.WriteString(`<button type="submit" class="filter-apply">Apply</button>`)
	b.WriteString(`</form>`)
}

func writeSelect(b *strings.Builder, name, label, current string, options []string, display func(string) string) {
	fmt.Fprintf(b, `<label>%s <select name="%s">`, Escape(label), name)
	sel := ""
	if current == "" {
		sel = " selected"
	}
	fmt.Fprintf(b, `<option value="any"%s>any</option>`, sel)
	for _, opt := range options {
		sel = ""
		if opt == current {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, EscapeAttr(opt), sel, Escape(display(opt)))
	}
	b.WriteString(`</select></label>`)
}

// writeStateInputs carries the non-form dimensions through as hidden fields
// so submitting one form does not drop the others. Page is never carried:
// any filter or size change lands on page 1.
func writeStateInputs(b *strings.Builder, st search.QueryState, withPageSize bool) {
	if st.Text != "" {
		fmt.Fprintf(b, `<input type="hidden" name="q" value="%s">`, EscapeAttr(st.Text))
	}
	if st.TopicID != "" {
		fmt.Fprintf(b, `<input type="hidden" name="topic" value="%s">`, EscapeAttr(st.TopicID))
	}
	if withPageSize && st.PageSize != search.DefaultPageSize {
		fmt.Fprintf(b, `<input type="hidden" name="pageSize" value="%d">`, st.PageSize)
	}
	if !withPageSize {
		writeFilterInputs(b, st.Filters)
	}
}

func writeFilterInputs(b *strings.Builder, f search.FilterSet) {
	if f.Duration != "" {
		fmt.Fprintf(b, `<input type="hidden" name="duration" value="%s">`, EscapeAttr(f.Duration))
	}
	if f.UploadDate != "" {
		fmt.Fprintf(b, `<input type="hidden" name="uploadDate" value="%s">`, EscapeAttr(f.UploadDate))
	}
	if f.Language != "" {
		fmt.Fprintf(b, `<input type="hidden" name="language" value="%s">`, EscapeAttr(f.Language))
	}
	if f.MinViews > 0 {
		fmt.Fprintf(b, `<input type="hidden" name="minViews" value="%d">`, f.MinViews)
	}
}

// renderPager writes a window of up to five page links around the current
// page, with first/last anchors and ellipsis gaps. Hidden entirely when a
// single page holds everything.
func renderPager(b *strings.Builder, st search.QueryState, totalPages int) {
	if totalPages <= 1 {
		return
	}
	cur := st.Page

	lo := cur - 2
	hi := cur + 2
	if lo < 1 {
		hi += 1 - lo
		lo = 1
	}
	if hi > totalPages {
		lo -= hi - totalPages
		hi = totalPages
	}
	if lo < 1 {
		lo = 1
	}

	b.WriteString(`<nav class="pager">`)
	if cur > 1 {
		fmt.Fprintf(b, `<a class="pg" href="%s">Prev</a>`, EscapeAttr(searchURL(st, cur-1)))
	}
	if lo > 1 {
		fmt.Fprintf(b, `<a class="pg" href="%s">1</a>`, EscapeAttr(searchURL(st, 1)))
		if lo > 2 {
			b.WriteString(`<span class="gap">&hellip;</span>`)
		}
	}
	for p := lo; p <= hi; p++ {
		if p == cur {
			fmt.Fprintf(b, `<span class="pg on">%d</span>`, p)
			continue
		}
		fmt.Fprintf(b, `<a class="pg" href="%s">%d</a>`, EscapeAttr(searchURL(st, p)), p)
	}
	if hi < totalPages {
		if hi < totalPages-1 {
			b.WriteString(`<span class="gap">&hellip;</span>`)
		}
		fmt.Fprintf(b, `<a class="pg" href="%s">%d</a>`, EscapeAttr(searchURL(st, totalPages)), totalPages)
	}
	if cur < totalPages {
		fmt.Fprintf(b, `<a class="pg" href="%s">Next</a>`, EscapeAttr(searchURL(st, cur+1)))
	}
	b.WriteString(`</nav>`)
}

// searchURL rebuilds the /search URL for the given state at a specific page.
func searchURL(st search.QueryState, page int) string {
	q := url.Values{}
	if st.Text != "" {
		q.Set("q", st.Text)
	}
	if st.TopicID != "" {
		q.Set("topic", st.TopicID)
	}
	if st.Filters.Duration != "" {
		q.Set("duration", st.Filters.Duration)
	}
	if st.Filters.UploadDate != "" {
		q.Set("uploadDate", st.Filters.UploadDate)
	}
	if st.Filters.Language != "" {
		q.Set("language", st.Filters.Language)
	}
	if st.Filters.MinViews > 0 {
		q.Set("minViews", strconv.Itoa(st.Filters.MinViews))
	}
	if st.PageSize != search.DefaultPageSize {
		q.Set("pageSize", strconv.Itoa(st.PageSize))
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return "/search"
	}
	return "/search?" + q.Encode()
}

func filterLabel(v string) string { return v }

func uploadDateLabel(v string) string {
	switch v {
	case "day":
		return "last 24 hours"
	case "week":
		return "this week"
	case "month":
		return "this month"
	case "year":
		return "this year"
	}
	return v
}

func languageLabel(v string) string {
	switch v {
	case "en":
		return "English"
	case "es":
		return "Spanish"
	case "pt":
		return "Portuguese"
	case "fr":
		return "French"
	case "de":
		return "German"
	}
	return v
}
