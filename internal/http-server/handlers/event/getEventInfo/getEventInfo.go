package getEventInfo

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/anfield5/tg-event-bot/internal/lib/api/response"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/sl"
	"github.com/anfield5/tg-event-bot/internal/models"
	"github.com/anfield5/tg-event-bot/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// EventView is the read-model of one tracked event.
type EventView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Open       bool           `json:"open"`
	Going      []string       `json:"going"`
	NotGoing   []string       `json:"not_going"`
	Extras     map[string]int `json:"extras,omitempty"`
	GoingTotal int            `json:"going_total"`
	NotGoingN  int            `json:"not_going_count"`
	CreatedAt  time.Time      `json:"created_at"`
	CreatedBy  string         `json:"created_by"`
	ClosedAt   *time.Time     `json:"closed_at,omitempty"`
	ClosedBy   string         `json:"closed_by,omitempty"`
}

type EventInfoResponse struct {
	response.Response
	Event EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Get(id string) (*models.Event, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		ev, err := getter.Get(eventID)
		if err != nil {
			if errors.Is(err, store.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, ev)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ev *models.Event) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    View(ev),
	})
}

// View flattens a record snapshot into its read-model.
func View(ev *models.Event) EventView {
	view := EventView{
		ID:         ev.ID,
		Name:       ev.Name,
		Open:       ev.Open,
		Going:      names(ev, models.Going),
		NotGoing:   names(ev, models.NotGoing),
		GoingTotal: ev.GoingTotal(),
		NotGoingN:  ev.NotGoingCount(),
		CreatedAt:  ev.CreatedAt,
		CreatedBy:  ev.CreatedBy,
		ClosedBy:   ev.ClosedBy,
	}

	if len(ev.Extras) > 0 {
		view.Extras = make(map[string]int, len(ev.Extras))
		for id, n := range ev.Extras {
			view.Extras[ev.Names[id]] = n
		}
	}

	if !ev.ClosedAt.IsZero() {
		closedAt := ev.ClosedAt
		view.ClosedAt = &closedAt
	}

	return view
}

func names(ev *models.Event, choice models.Choice) []string {
	list := []string{}
	for id, c := range ev.Choices {
		if c == choice {
			list = append(list, ev.Names[id])
		}
	}
	sort.Strings(list)
	return list
}
