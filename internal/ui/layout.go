package ui

import (
	"fmt"
	"strings"
)

// OpenPage writes the shared document head and header. Every page goes
// through here so the search bar and suggestion panel are always present.
func OpenPage(b *strings.Builder, title, query string) {
	fmt.Fprintf(b, `<!DOCTYPE html><html><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s - ViewStats</title>
<link rel="stylesheet" href="/style.css">
</head><body>`, Escape(title))

	b.WriteString(`<header class="head">`)
	b.WriteString(`<a class="head-logo" href="/">ViewStats</a>`)
	b.WriteString(`<form id="search-form" class="head-search" action="/search" method="get" autocomplete="off">`)
	b.WriteString(`<input id="search-input" class="search-input" type="text" name="q" placeholder="Type what you want to learn..." value="` + EscapeAttr(query) + `">`)
	b.WriteString(`<button type="submit" class="search-submit" aria-label="Search">Search</button>`)
	b.WriteString(`<div id="suggestion-panel" class="suggestions"></div>`)
	b.WriteString(`</form>`)
	b.WriteString(`</header>`)
}

// ClosePage appends the suggestion script and closes the document.
func ClosePage(b *strings.Builder) {
	AppendSuggestionScript(b)
	b.WriteString(`</body></html>`)
}
