package getAllEvents

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/event/getEventInfo"
	"github.com/anfield5/tg-event-bot/internal/lib/api/response"
	"github.com/anfield5/tg-event-bot/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []getEventInfo.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	List() []*models.Event
}

func New(log *slog.Logger, lister EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		events := lister.List()

		views := make([]getEventInfo.EventView, 0, len(events))
		for _, ev := range events {
			views = append(views, getEventInfo.View(ev))
		}
		sort.Slice(views, func(i, j int) bool {
			return views[i].CreatedAt.Before(views[j].CreatedAt)
		})

		log.Info("events retrieved successfully", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, views []getEventInfo.EventView) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   views,
	})
}
