package engine

import (
	"testing"
	"time"

	"github.com/anfield5/tg-event-bot/internal/action"
	"github.com/anfield5/tg-event-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Actor{ID: 1, Name: "alice"}
	bob   = models.Actor{ID: 2, Name: "bob"}
)

func newEvent() *models.Event {
	return &models.Event{
		ID:           "ab12cd34",
		Name:         "Picnic",
		IconGoing:    "🟢",
		IconNotGoing: "❌",
		Open:         true,
		Choices:      make(map[int64]models.Choice),
		Extras:       make(map[int64]int),
		Names:        make(map[int64]string),
	}
}

func TestChoiceIsExclusive(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	sequence := []action.Kind{
		action.Going, action.NotGoing, action.Going,
		action.NotGoing, action.NotGoing, action.Going,
	}

	for _, kind := range sequence {
		eng.Apply(ev, kind, alice)

		_, exists := ev.Choices[alice.ID]
		assert.True(t, exists)
		assert.Len(t, ev.Choices, 1, "actor must hold at most one choice")
	}

	assert.Equal(t, models.Going, ev.Choices[alice.ID])
}

func TestDuplicateChoiceRejected(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Going, alice))
	assert.Equal(t, RejectedDuplicateChoice, eng.Apply(ev, action.Going, alice))
	assert.Equal(t, models.Going, ev.Choices[alice.ID])

	require.Equal(t, Applied, eng.Apply(ev, action.NotGoing, alice))
	assert.Equal(t, RejectedDuplicateChoice, eng.Apply(ev, action.NotGoing, alice))
	assert.Equal(t, models.NotGoing, ev.Choices[alice.ID])
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))

	before := map[int64]int{alice.ID: 2}
	require.Equal(t, before, ev.Extras)

	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Decrement, alice))

	assert.Equal(t, before, ev.Extras, "increment then decrement must restore the prior mapping")
}

func TestDecrementFloor(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	// No entry yet: nothing to subtract, state unchanged.
	assert.Equal(t, RejectedNothingToSubtract, eng.Apply(ev, action.Decrement, alice))
	assert.Empty(t, ev.Extras)

	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))

	// 2 -> 1 keeps the entry.
	require.Equal(t, Applied, eng.Apply(ev, action.Decrement, alice))
	assert.Equal(t, 1, ev.Extras[alice.ID])

	// 1 -> 0 deletes the entry, never stores zero.
	require.Equal(t, Applied, eng.Apply(ev, action.Decrement, alice))
	_, exists := ev.Extras[alice.ID]
	assert.False(t, exists)

	assert.Equal(t, RejectedNothingToSubtract, eng.Apply(ev, action.Decrement, alice))
}

func TestClosedEventRejectsMutations(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Increment, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Close, bob))
	require.False(t, ev.Open)

	testCases := []struct {
		name string
		kind action.Kind
	}{
		{"going", action.Going},
		{"notgoing", action.NotGoing},
		{"increment", action.Increment},
		{"decrement", action.Decrement},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, RejectedClosed, eng.Apply(ev, tc.kind, alice))
		})
	}

	assert.Empty(t, ev.Choices)
	assert.Equal(t, map[int64]int{alice.ID: 1}, ev.Extras)

	// Reopen lifts the gate.
	require.Equal(t, Applied, eng.Apply(ev, action.Open, bob))
	assert.Equal(t, Applied, eng.Apply(ev, action.Going, alice))
}

func TestCloseOpenIdempotence(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	assert.Equal(t, RejectedAlreadyOpen, eng.Apply(ev, action.Open, alice))

	require.Equal(t, Applied, eng.Apply(ev, action.Going, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Close, bob))

	assert.Equal(t, RejectedAlreadyClosed, eng.Apply(ev, action.Close, bob))
	assert.Equal(t, 1, ev.GoingTotal(), "repeated close must leave counts unchanged")

	require.Equal(t, Applied, eng.Apply(ev, action.Open, bob))
	assert.Equal(t, RejectedAlreadyOpen, eng.Apply(ev, action.Open, bob))
}

func TestCloseStampsProvenance(t *testing.T) {
	t.Parallel()

	closedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	eng := NewWithClock(func() time.Time { return closedAt })
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Close, bob))

	assert.Equal(t, closedAt, ev.ClosedAt)
	assert.Equal(t, "bob", ev.ClosedBy)
}

func TestPicnicScenario(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Going, alice))
	require.Equal(t, Applied, eng.Apply(ev, action.Going, bob))
	require.Equal(t, Applied, eng.Apply(ev, action.Increment, bob))
	require.Equal(t, Applied, eng.Apply(ev, action.Increment, bob))
	require.Equal(t, Applied, eng.Apply(ev, action.NotGoing, alice))

	assert.Equal(t, map[int64]models.Choice{
		alice.ID: models.NotGoing,
		bob.ID:   models.Going,
	}, ev.Choices)
	assert.Equal(t, map[int64]int{bob.ID: 2}, ev.Extras)
	assert.Equal(t, 3, ev.GoingTotal())
	assert.Equal(t, 1, ev.NotGoingCount())
}

func TestImmediateCloseBlocksFirstVote(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Close, alice))

	assert.Equal(t, RejectedClosed, eng.Apply(ev, action.Going, bob))
	assert.Empty(t, ev.Choices)
	assert.Equal(t, 0, ev.GoingTotal())
}

func TestRename(t *testing.T) {
	t.Parallel()

	eng := New()
	ev := newEvent()

	require.Equal(t, Applied, eng.Apply(ev, action.Going, alice))

	eng.Rename(ev, "Evening Picnic", "✅", "")

	assert.Equal(t, "Evening Picnic", ev.Name)
	assert.Equal(t, "✅", ev.IconGoing)
	assert.Equal(t, "❌", ev.IconNotGoing, "empty icon argument keeps the current value")
	assert.Equal(t, models.Going, ev.Choices[alice.ID], "rename must not touch attendance")
}

func TestOutcomeNotices(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Applied.Notice())
	assert.True(t, Applied.OK())

	for _, o := range []Outcome{
		RejectedClosed,
		RejectedAlreadyClosed,
		RejectedAlreadyOpen,
		RejectedDuplicateChoice,
		RejectedNothingToSubtract,
	} {
		assert.False(t, o.OK())
		assert.NotEmpty(t, o.Notice())
	}
}
