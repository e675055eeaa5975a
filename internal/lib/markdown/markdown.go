// Package markdown escapes user-supplied text for the chat transport's
// Markdown parse mode.
package markdown

import "strings"

var escaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// Escape neutralizes Markdown control characters in user text so a display
// name cannot break the rendered message markup.
func Escape(s string) string {
	return escaper.Replace(s)
}
