package ui

import "html"

// Escape ensures user content cannot break inline markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes content placed inside attribute values.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}
