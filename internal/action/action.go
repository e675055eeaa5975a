// Package action encodes and decodes callback button data. The wire form is
// "<keyword>_<eventID>"; it is decoded exactly once, at the dispatch
// boundary, into a tagged Kind.
package action

import "strings"

// Kind enumerates the button actions a callback can carry.
type Kind int

const (
	Unknown Kind = iota
	Going
	NotGoing
	Increment
	Decrement
	Close
	Open
)

// Noop is the data carried by disabled buttons; pressing one is ignored.
const Noop = "noop"

var keywords = map[string]Kind{
	"going":    Going,
	"notgoing": NotGoing,
	"plus":     Increment,
	"minus":    Decrement,
	"close":    Close,
	"open":     Open,
}

var words = map[Kind]string{
	Going:     "going",
	NotGoing:  "notgoing",
	Increment: "plus",
	Decrement: "minus",
	Close:     "close",
	Open:      "open",
}

// Parse decodes callback data. ok is false for Noop, malformed data and
// unknown keywords; callers drop those silently, which is what makes
// disabled buttons and stale presses harmless.
func Parse(data string) (kind Kind, eventID string, ok bool) {
	if data == Noop {
		return Unknown, "", false
	}

	word, id, found := strings.Cut(data, "_")
	if !found || id == "" {
		return Unknown, "", false
	}

	kind, ok = keywords[word]
	if !ok {
		return Unknown, "", false
	}

	return kind, id, true
}

// Encode produces the callback data for a button.
func Encode(kind Kind, eventID string) string {
	return words[kind] + "_" + eventID
}

func (k Kind) String() string {
	if w, ok := words[k]; ok {
		return w
	}
	return "unknown"
}
