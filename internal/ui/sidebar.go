package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tsnthiago/viewstats/internal/taxonomy"
)

// RenderSidebar writes the topic tree. Branches on the path to the active
// topic are expanded, everything else is collapsed to its top level.
func RenderSidebar(b *strings.Builder, tree []taxonomy.Node, activeTopic string) {
	open := map[string]bool{}
	for _, id := range taxonomy.Ancestors(activeTopic) {
		open[id] = true
	}
	b.WriteString(`<aside class="sidebar"><h2 class="sidebar-title">Topics</h2><ul class="topic-list">`)
	for i := range tree {
		renderTopicNode(b, &tree[i], activeTopic, open)
	}
	b.WriteString(`</ul></aside>`)
}

func renderTopicNode(b *strings.Builder, n *taxonomy.Node, activeTopic string, open map[string]bool) {
	cls := "topic-link"
	if n.ID == activeTopic {
		cls += " on"
	}
	b.WriteString(`<li>`)
	fmt.Fprintf(b, `<a class="%s" href="/search?topic=%s">%s`, cls, url.QueryEscape(n.ID), Escape(n.Name))
	if n.VideoCount > 0 {
		fmt.Fprintf(b, `<span class="topic-count">%d</span>`, n.VideoCount)
	}
	b.WriteString(`</a>`)
	if len(n.Children) > 0 && (open[n.ID] || n.ID == activeTopic) {
		b.WriteString(`<ul class="topic-list">`)
		for i := range n.Children {
			renderTopicNode(b, &n.Children[i], activeTopic, open)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</li>`)
}

// RenderSidebarError replaces the tree when the taxonomy could not be loaded.
func RenderSidebarError(b *strings.Builder) {
	b.WriteString(`<aside class="sidebar"><h2 class="sidebar-title">Topics</h2>`)
	b.WriteString(`<p class="sidebar-error">Unable to load data. Please try again later.</p>`)
	b.WriteString(`</aside>`)
}
