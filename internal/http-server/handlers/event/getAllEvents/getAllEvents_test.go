package getAllEvents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anfield5/tg-event-bot/internal/http-server/handlers/event/getAllEvents/mocks"
	"github.com/anfield5/tg-event-bot/internal/lib/logger/handlers/slogdiscard"
	"github.com/anfield5/tg-event-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	testEvents := []*models.Event{
		{
			ID:        "ev000002",
			Name:      "Dinner",
			Open:      true,
			Choices:   map[int64]models.Choice{},
			Extras:    map[int64]int{},
			Names:     map[int64]string{},
			CreatedAt: newer,
			CreatedBy: "bob",
		},
		{
			ID:        "ev000001",
			Name:      "Picnic",
			Open:      true,
			Choices:   map[int64]models.Choice{1: models.Going},
			Extras:    map[int64]int{},
			Names:     map[int64]string{1: "alice"},
			CreatedAt: older,
			CreatedBy: "alice",
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with events",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("List").Return(testEvents)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				require.Len(t, response.Events, 2)

				// Sorted by creation time, oldest first.
				assert.Equal(t, "ev000001", response.Events[0].ID)
				assert.Equal(t, "ev000002", response.Events[1].ID)
				assert.Equal(t, 1, response.Events[0].GoingTotal)
			},
		},
		{
			name: "Empty list",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("List").Return([]*models.Event{})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Empty(t, response.Events)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockLister.AssertExpectations(t)
		})
	}
}
