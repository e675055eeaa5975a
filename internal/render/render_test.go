package render

import (
	"testing"

	"github.com/anfield5/tg-event-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice  = models.Actor{ID: 1, Name: "alice"}
	bob    = models.Actor{ID: 2, Name: "bob"}
	carol  = models.Actor{ID: 3, Name: "carol"}
	nobody = models.Actor{ID: 99, Name: "nobody"}
)

func fixture() *models.Event {
	return &models.Event{
		ID:           "ab12cd34",
		Name:         "Team Picnic",
		IconGoing:    "🟢",
		IconNotGoing: "❌",
		Open:         true,
		Choices: map[int64]models.Choice{
			alice.ID: models.Going,
			bob.ID:   models.NotGoing,
			carol.ID: models.Going,
		},
		Extras: map[int64]int{carol.ID: 2},
		Names: map[int64]string{
			alice.ID: "alice",
			bob.ID:   "bob",
			carol.ID: "carol",
		},
	}
}

func TestProjectText(t *testing.T) {
	t.Parallel()

	p := Project(fixture(), nobody)

	expected := "📅 *Team Picnic*\n" +
		"\n" +
		"🟢 *Going* (4):\n" +
		"alice\n" +
		"carol\n" +
		"2, from carol\n" +
		"\n" +
		"❌ *Not going* (1):\n" +
		"bob"

	assert.Equal(t, expected, p.Text)
}

func TestProjectTextIsStable(t *testing.T) {
	t.Parallel()

	ev := fixture()

	first := Project(ev, nobody)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Text, Project(ev, nobody).Text)
	}
}

func TestProjectEscapesUserText(t *testing.T) {
	t.Parallel()

	ev := fixture()
	ev.Name = "snake_case *party*"
	ev.Names[alice.ID] = "al_ice"

	p := Project(ev, nobody)

	assert.Contains(t, p.Text, `snake\_case \*party\*`)
	assert.Contains(t, p.Text, `al\_ice`)
}

func TestProjectEmptyEvent(t *testing.T) {
	t.Parallel()

	ev := &models.Event{
		ID:           "ab12cd34",
		Name:         "Picnic",
		IconGoing:    "🟢",
		IconNotGoing: "❌",
		Open:         true,
		Choices:      map[int64]models.Choice{},
		Extras:       map[int64]int{},
		Names:        map[int64]string{},
	}

	p := Project(ev, nobody)

	expected := "📅 *Picnic*\n" +
		"\n" +
		"🟢 *Going* (0):\n" +
		"\n" +
		"❌ *Not going* (0):"

	assert.Equal(t, expected, p.Text)
}

func TestKeyboardClosedEvent(t *testing.T) {
	t.Parallel()

	ev := fixture()
	ev.Open = false

	p := Project(ev, nobody)

	require.Len(t, p.Keyboard, 1)
	require.Len(t, p.Keyboard[0], 1)
	assert.Equal(t, "open_ab12cd34", p.Keyboard[0][0].Data)
}

func TestKeyboardViewerWithoutChoice(t *testing.T) {
	t.Parallel()

	p := Project(fixture(), nobody)

	require.Len(t, p.Keyboard, 3)

	require.Len(t, p.Keyboard[0], 2)
	assert.Equal(t, "going_ab12cd34", p.Keyboard[0][0].Data)
	assert.Equal(t, "notgoing_ab12cd34", p.Keyboard[0][1].Data)

	require.Len(t, p.Keyboard[1], 2)
	assert.Equal(t, "plus_ab12cd34", p.Keyboard[1][0].Data)
	assert.Equal(t, "minus_ab12cd34", p.Keyboard[1][1].Data)

	require.Len(t, p.Keyboard[2], 1)
	assert.Equal(t, "close_ab12cd34", p.Keyboard[2][0].Data)
}

func TestKeyboardOmitsViewerChoice(t *testing.T) {
	t.Parallel()

	// alice already chose going: only the opposite button remains.
	p := Project(fixture(), alice)
	require.Len(t, p.Keyboard[0], 1)
	assert.Equal(t, "notgoing_ab12cd34", p.Keyboard[0][0].Data)

	p = Project(fixture(), bob)
	require.Len(t, p.Keyboard[0], 1)
	assert.Equal(t, "going_ab12cd34", p.Keyboard[0][0].Data)
}
