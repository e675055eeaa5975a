package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anfield5/tg-event-bot/internal/lib/api/response"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	ChatID       int64  `json:"chat_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	IconGoing    string `json:"icon_going,omitempty"`
	IconNotGoing string `json:"icon_not_going,omitempty"`
	CreatorName  string `json:"creator_name,omitempty"`
}

type EventResponse struct {
	response.Response
	EventID string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, chatID int64, name, iconGoing, iconNotGoing string, creator models.Actor) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		actor := models.Actor{Name: req.CreatorName}
		if actor.Name == "" {
			actor.Name = "admin"
		}

		ev, err := creator.CreateEvent(r.Context(), req.ChatID, req.Name, req.IconGoing, req.IconNotGoing, actor)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.String("id", ev.ID))

		responseOK(w, r, ev.ID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID string) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
	})
}
