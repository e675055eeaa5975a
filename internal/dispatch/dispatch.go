// Package dispatch is the shell between the chat transport and the core:
// it routes commands and button callbacks to the store, pushes the
// re-rendered message back to chat, and hands durable facts to the
// reconciliation sync. Expected rejections become per-user notices;
// transport and ledger failures are logged and never undo applied state.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anfield5/tg-event-bot/internal/action"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/models"
	"github.com/anfield5/tg-event-bot/internal/render"
	"github.com/anfield5/tg-event-bot/internal/store"
	"github.com/anfield5/tg-event-bot/internal/transport"
)

const (
	defaultIconGoing    = "🟢"
	defaultIconNotGoing = "❌"

	helpText = "Hello! Use /add_event <event name> to create a new event.\n" +
		"Use /update_event <event_id> <new event name> to rename an event."
)

// Recorder receives durable facts for best-effort mirroring.
type Recorder interface {
	RecordCreated(ev *models.Event)
	RecordRenamed(id, name string)
	RecordClosed(ev *models.Event)
	RecordAction(id string, actor models.Actor, actionKind string)
}

type Shell struct {
	log   *slog.Logger
	store *store.Store
	chat  transport.Client
	rec   Recorder
}

func New(log *slog.Logger, st *store.Store, chat transport.Client, rec Recorder) *Shell {
	return &Shell{
		log:   log,
		store: st,
		chat:  chat,
		rec:   rec,
	}
}

// HandleMessage routes a chat message. Non-command chatter is ignored.
func (s *Shell) HandleMessage(ctx context.Context, msg transport.Message) {
	cmd, args := splitCommand(msg.Text)

	switch cmd {
	case "/start":
		s.reply(ctx, msg.Chat.ID, helpText)
	case "/add_event":
		s.addEvent(ctx, msg, args)
	case "/update_event":
		s.updateEvent(ctx, msg, args)
	}
}

func (s *Shell) addEvent(ctx context.Context, msg transport.Message, args []string) {
	const op = "dispatch.addEvent"

	log := s.log.With(slog.String("op", op))

	if len(args) == 0 {
		s.reply(ctx, msg.Chat.ID, "Please provide event name after command.")
		return
	}

	name := strings.Join(args, " ")
	creator := actorOf(msg.From)

	ev := s.store.Create(name, defaultIconGoing, defaultIconNotGoing, creator)

	log = log.With(slog.String("event_id", ev.ID))
	log.Info("event created", slog.String("name", name))

	payload := render.Project(ev, creator)

	messageID, err := s.chat.SendMessage(ctx, msg.Chat.ID, payload.Text, toMarkup(payload))
	if err != nil {
		log.Error("failed to announce event", sl.Err(err))
		return
	}

	if err = s.store.SetOrigin(ev.ID, msg.Chat.ID, messageID); err != nil {
		log.Error("failed to remember origin message", sl.Err(err))
	}

	s.rec.RecordCreated(ev)
}

func (s *Shell) updateEvent(ctx context.Context, msg transport.Message, args []string) {
	const op = "dispatch.updateEvent"

	log := s.log.With(slog.String("op", op))

	if len(args) < 2 {
		s.reply(ctx, msg.Chat.ID, "Usage: /update_event <event_id> <new event name>")
		return
	}

	id := args[0]
	newName := strings.Join(args[1:], " ")

	ev, err := s.store.Rename(id, newName, "", "")
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			s.reply(ctx, msg.Chat.ID, "Event ID not found.")
			return
		}
		log.Error("failed to rename event", sl.Err(err))
		return
	}

	log.Info("event renamed", slog.String("event_id", id), slog.String("name", newName))

	s.redraw(ctx, ev, actorOf(msg.From))
	s.rec.RecordRenamed(id, newName)

	s.reply(ctx, msg.Chat.ID, "Event updated.")
}

// HandleCallback routes a button press. Malformed or unrecognized callback
// data is acknowledged and dropped: that is what makes disabled buttons
// and stale presses no-ops.
func (s *Shell) HandleCallback(ctx context.Context, cb transport.CallbackQuery) {
	const op = "dispatch.HandleCallback"

	log := s.log.With(slog.String("op", op))

	kind, id, ok := action.Parse(cb.Data)
	if !ok {
		s.answer(ctx, cb.ID, "")
		return
	}

	actor := actorOf(cb.From)
	log = log.With(
		slog.String("event_id", id),
		slog.String("action", kind.String()),
		slog.Int64("actor_id", actor.ID),
	)

	ev, outcome, err := s.store.Mutate(id, kind, actor)
	if err != nil {
		log.Info("action for unknown event")
		s.answer(ctx, cb.ID, "Event not found or expired")
		if cb.Message != nil {
			err = s.chat.EditMessage(ctx, cb.Message.Chat.ID, cb.Message.MessageID,
				"Event not found or expired.", nil)
			if err != nil {
				log.Error("failed to edit message", sl.Err(err))
			}
		}
		return
	}

	if !outcome.OK() {
		log.Info("action rejected", slog.String("notice", outcome.Notice()))
		s.answer(ctx, cb.ID, outcome.Notice())
		return
	}

	log.Info("action applied")
	s.answer(ctx, cb.ID, "")

	s.rec.RecordAction(id, actor, kind.String())
	if kind == action.Close {
		s.rec.RecordClosed(ev)
	}

	s.redraw(ctx, ev, actor)
}

// CreateEvent creates an event and announces it into the given chat. Used
// by the admin API; the chat command path goes through HandleMessage.
func (s *Shell) CreateEvent(ctx context.Context, chatID int64, name, iconGoing, iconNotGoing string, creator models.Actor) (*models.Event, error) {
	if iconGoing == "" {
		iconGoing = defaultIconGoing
	}
	if iconNotGoing == "" {
		iconNotGoing = defaultIconNotGoing
	}

	ev := s.store.Create(name, iconGoing, iconNotGoing, creator)

	payload := render.Project(ev, creator)

	messageID, err := s.chat.SendMessage(ctx, chatID, payload.Text, toMarkup(payload))
	if err != nil {
		return nil, err
	}

	if err = s.store.SetOrigin(ev.ID, chatID, messageID); err != nil {
		return nil, err
	}

	s.rec.RecordCreated(ev)

	return ev, nil
}

// redraw edits the origin message to reflect the snapshot. The snapshot
// came straight from the mutation, so the rendered state is never staler
// than the action that triggered it.
func (s *Shell) redraw(ctx context.Context, ev *models.Event, viewer models.Actor) {
	if ev.MessageID == 0 {
		return
	}

	payload := render.Project(ev, viewer)

	err := s.chat.EditMessage(ctx, ev.ChatID, ev.MessageID, payload.Text, toMarkup(payload))
	if err != nil {
		s.log.Error("failed to update message",
			slog.String("event_id", ev.ID),
			sl.Err(err),
		)
	}
}

func (s *Shell) reply(ctx context.Context, chatID int64, text string) {
	if _, err := s.chat.SendMessage(ctx, chatID, text, nil); err != nil {
		s.log.Error("failed to send reply", sl.Err(err))
	}
}

func (s *Shell) answer(ctx context.Context, callbackID, notice string) {
	if err := s.chat.AnswerCallback(ctx, callbackID, notice); err != nil {
		s.log.Error("failed to answer callback", sl.Err(err))
	}
}

func actorOf(u transport.User) models.Actor {
	return models.Actor{ID: u.ID, Name: u.DisplayName()}
}

func splitCommand(text string) (cmd string, args []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}

	// Commands in group chats arrive as "/cmd@botname".
	cmd, _, _ = strings.Cut(fields[0], "@")

	return cmd, fields[1:]
}

func toMarkup(p render.Payload) *transport.Markup {
	markup := &transport.Markup{}
	for _, row := range p.Keyboard {
		buttons := make([]transport.Button, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, transport.Button{
				Text:         b.Text,
				CallbackData: b.Data,
			})
		}
		markup.InlineKeyboard = append(markup.InlineKeyboard, buttons)
	}
	return markup
}
