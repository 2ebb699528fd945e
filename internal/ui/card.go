package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tsnthiago/viewstats/internal/catalog"
)

// RenderVideoCard writes one grid card. The relevance badge appears only
// for ranked results; topic browsing shows none.
func RenderVideoCard(b *strings.Builder, v catalog.VideoSummary, showRank bool) {
	watch := "/watch?v=" + url.QueryEscape(v.ID)

	b.WriteString(`<div class="card">`)
	fmt.Fprintf(b, `<a class="card-thumb" href="%s">`, EscapeAttr(watch))
	fmt.Fprintf(b, `<img src="%s" alt="" loading="lazy">`, EscapeAttr(v.Thumbnail))
	if v.Duration != "" {
		fmt.Fprintf(b, `<span class="badge">%s</span>`, Escape(v.Duration))
	}
	if showRank && v.Relevance != nil {
		fmt.Fprintf(b, `<span class="relevance">%.0f%%</span>`, *v.Relevance*100)
	}
	b.WriteString(`</a>`)

	b.WriteString(`<div class="card-body">`)
	fmt.Fprintf(b, `<a class="card-title" href="%s">%s</a>`, EscapeAttr(watch), Escape(v.Title))
	if v.Channel.Name != "" {
		fmt.Fprintf(b, `<div class="card-channel">%s</div>`, Escape(v.Channel.Name))
	}
	var meta []string
	if v.ViewCount > 0 {
		meta = append(meta, FormatCount(v.ViewCount)+" views")
	}
	if v.UploadDate != "" {
		meta = append(meta, v.UploadDate)
	}
	if len(meta) > 0 {
		fmt.Fprintf(b, `<div class="card-meta">%s</div>`, Escape(strings.Join(meta, " · ")))
	}
	b.WriteString(`</div></div>`)
}

// FormatCount abbreviates large counts the way video sites do: 1.2K, 3.4M.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1e9)) + "B"
	case n >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1e6)) + "M"
	case n >= 1_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1e3)) + "K"
	}
	return fmt.Sprintf("%d", n)
}

func trimTrailingZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
