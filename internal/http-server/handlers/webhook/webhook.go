package webhook

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/anfield5/tg-event-bot/internal/lib/api/response"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/transport"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Dispatcher
type Dispatcher interface {
	HandleMessage(ctx context.Context, msg transport.Message)
	HandleCallback(ctx context.Context, cb transport.CallbackQuery)
}

// New handles inbound transport updates. The transport expects a 200 for
// every delivered update; updates the bot has no handler for are simply
// acknowledged.
func New(log *slog.Logger, dispatcher Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webhook.New"

		log = log.With(slog.String("op", op))

		var upd transport.Update

		err := render.DecodeJSON(r.Body, &upd)
		if err != nil {
			log.Error("failed to decode update", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode update"))

			return
		}

		log.Debug("update received", slog.Int64("update_id", upd.UpdateID))

		switch {
		case upd.CallbackQuery != nil:
			dispatcher.HandleCallback(r.Context(), *upd.CallbackQuery)
		case upd.Message != nil:
			dispatcher.HandleMessage(r.Context(), *upd.Message)
		}

		render.JSON(w, r, response.OK())
	}
}
