package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tsnthiago/viewstats/internal/taxonomy"
)

// Featured topics shown on the landing page.
var featuredTopics = []string{
	"Programming", "Science", "Music Theory", "Literature", "Art History", "Mathematics",
}

// HomePage carries the landing page content. Tree may be nil when the
// taxonomy failed to load.
type HomePage struct {
	Tree    []taxonomy.Node
	TreeErr bool
}

// RenderHome renders the landing page: hero, topic sidebar, and featured
// topic shortcuts.
func RenderHome(p HomePage) string {
	var b strings.Builder
	OpenPage(&b, "Learn from any video", "")

	b.WriteString(`<div class="page">`)
	if p.TreeErr {
		RenderSidebarError(&b)
	} else {
		RenderSidebar(&b, p.Tree, "")
	}

	b.WriteString(`<main class="results">`)
	b.WriteString(`<section class="hero">`)
	b.WriteString(`<h1>Find the exact moment you need</h1>`)
	b.WriteString(`<p>Semantic search across educational videos. Search by meaning, browse by topic, jump straight to the sentence in the transcript.</p>`)
	b.WriteString(`</section>`)

	b.WriteString(`<section class="featured"><h2>Start with a topic</h2><div class="featured-grid">`)
	for _, t := range featuredTopics {
		fmt.Fprintf(&b, `<a class="featured-card" href="/search?q=%s">%s</a>`, url.QueryEscape(t), Escape(t))
	}
	b.WriteString(`</div></section>`)

	b.WriteString(`</main></div>`)
	ClosePage(&b)
	return b.String()
}
