package ui

import "strings"

// RenderNotFound is the terminal missing-video page.
func RenderNotFound() string {
	var b strings.Builder
	OpenPage(&b, "Video not found", "")
	b.WriteString(`<div class="error-page"><h1>Video not found</h1>` +
		`<p>This video does not exist or has been removed.</p>` +
		`<a class="retry" href="/">Go to home</a></div>`)
	ClosePage(&b)
	return b.String()
}

// RenderError is the transient-failure page; retryHref reloads the same URL.
func RenderError(retryHref string) string {
	var b strings.Builder
	OpenPage(&b, "Something went wrong", "")
	b.WriteString(`<div class="error-page"><h1>Something went wrong</h1>` +
		`<p>Unable to load data. Please try again later.</p>` +
		`<a class="retry" href="` + EscapeAttr(retryHref) + `">Retry</a></div>`)
	ClosePage(&b)
	return b.String()
}
