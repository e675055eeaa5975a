// Package render projects an event record into the display payload for the
// chat message: the text body and the inline keyboard. Pure; the same
// record and viewer always produce the same payload, so re-renders edit
// cleanly in place.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anfield5/tg-event-bot/internal/action"
	"github.com/anfield5/tg-event-bot/internal/lib/markdown"
	"github.com/anfield5/tg-event-bot/internal/models"
)

// Button is one inline keyboard button.
type Button struct {
	Text string
	Data string
}

// Payload is what gets sent or edited into the chat message.
type Payload struct {
	Text     string
	Keyboard [][]Button
}

// Project renders e for the given viewer. The viewer only affects which of
// the going/not-going buttons is shown: the one matching the viewer's
// current choice is omitted. The shell passes the last actor to mutate the
// record, since the transport renders one shared message (see DESIGN.md).
func Project(e *models.Event, viewer models.Actor) Payload {
	return Payload{
		Text:     text(e),
		Keyboard: keyboard(e, viewer),
	}
}

func text(e *models.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 *%s*\n\n", markdown.Escape(e.Name))

	fmt.Fprintf(&b, "%s *Going* (%d):\n", e.IconGoing, e.GoingTotal())
	for _, name := range members(e, models.Going) {
		b.WriteString(markdown.Escape(name))
		b.WriteByte('\n')
	}
	for _, x := range extras(e) {
		fmt.Fprintf(&b, "%d, from %s\n", x.count, markdown.Escape(x.name))
	}

	fmt.Fprintf(&b, "\n%s *Not going* (%d):\n", e.IconNotGoing, e.NotGoingCount())
	for _, name := range members(e, models.NotGoing) {
		b.WriteString(markdown.Escape(name))
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func keyboard(e *models.Event, viewer models.Actor) [][]Button {
	if !e.Open {
		return [][]Button{{
			{Text: "🟢 Open Event", Data: action.Encode(action.Open, e.ID)},
		}}
	}

	var choiceRow []Button
	current, hasChoice := e.Choices[viewer.ID]
	if !hasChoice || current != models.Going {
		choiceRow = append(choiceRow, Button{
			Text: e.IconGoing + " Going",
			Data: action.Encode(action.Going, e.ID),
		})
	}
	if !hasChoice || current != models.NotGoing {
		choiceRow = append(choiceRow, Button{
			Text: e.IconNotGoing + " Not going",
			Data: action.Encode(action.NotGoing, e.ID),
		})
	}

	return [][]Button{
		choiceRow,
		{
			{Text: "➕ +1", Data: action.Encode(action.Increment, e.ID)},
			{Text: "➖ -1", Data: action.Encode(action.Decrement, e.ID)},
		},
		{
			{Text: "🔴 Close Event", Data: action.Encode(action.Close, e.ID)},
		},
	}
}

// members returns display names with the given choice, sorted so renders
// are stable.
func members(e *models.Event, choice models.Choice) []string {
	var names []string
	for id, c := range e.Choices {
		if c == choice {
			names = append(names, e.Names[id])
		}
	}
	sort.Strings(names)
	return names
}

type extra struct {
	name  string
	count int
}

func extras(e *models.Event) []extra {
	list := make([]extra, 0, len(e.Extras))
	for id, n := range e.Extras {
		list = append(list, extra{name: e.Names[id], count: n})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].name < list[j].name })
	return list
}
