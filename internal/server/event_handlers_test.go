package server

import (
	"net/http"
	"testing"

	"volunteerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing required skills",
			body: map[string]any{
				"name": "Food Drive", "description": "d", "location": "l",
				"required_skills": []string{},
				"urgency":         "High", "date": futureDate(7), "max_volunteers": 5,
			},
		},
		{
			name: "bad urgency",
			body: map[string]any{
				"name": "Food Drive", "description": "d", "location": "l",
				"required_skills": []string{"Cooking"},
				"urgency":         "Critical", "date": futureDate(7), "max_volunteers": 5,
			},
		},
		{
			name: "bad date format",
			body: map[string]any{
				"name": "Food Drive", "description": "d", "location": "l",
				"required_skills": []string{"Cooking"},
				"urgency":         "High", "date": "12/01/2025", "max_volunteers": 5,
			},
		},
		{
			name: "zero capacity",
			body: map[string]any{
				"name": "Food Drive", "description": "d", "location": "l",
				"required_skills": []string{"Cooking"},
				"urgency":         "High", "date": futureDate(7), "max_volunteers": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, s, http.MethodPost, "/events/create", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestEventCRUD(t *testing.T) {
	s := newTestServer(t)
	eventID := createEvent(t, s, "Food Drive", futureDate(7), 5)

	resp := doJSON(t, s, http.MethodGet, "/events/"+itoa(eventID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var event models.Event
	decodeBody(t, resp, &event)
	assert.Equal(t, "Food Drive", event.Name)
	assert.Equal(t, models.EventStatusOpen, event.Status)

	resp = doJSON(t, s, http.MethodPut, "/events/update/"+itoa(eventID), map[string]any{
		"name": "Bigger Food Drive", "description": "d", "location": "l",
		"required_skills": []string{"Cooking"},
		"urgency":         "Urgent", "date": futureDate(14), "max_volunteers": 10,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/events/all", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var events []models.Event
	decodeBody(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Bigger Food Drive", events[0].Name)
	assert.Equal(t, 10, events[0].MaxVolunteers)
}

func TestDeleteEventNotifiesAssigneesPlusCancellation(t *testing.T) {
	s := newTestServer(t)
	first := registerUser(t, s, "jamie")
	second := registerUser(t, s, "alex")
	token := loginUser(t, s, "jamie")
	eventID := createEvent(t, s, "Food Drive", futureDate(7), 5)

	for _, uid := range []uint{first, second} {
		resp := doJSON(t, s, http.MethodPost, "/api/match", map[string]any{
			"volunteerId": uid, "eventId": eventID,
		}, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// Two match notices exist before the delete; discount them below.
	var before int64
	require.NoError(t, s.DB.Model(&models.Notification{}).Count(&before).Error)

	resp := doJSON(t, s, http.MethodDelete, "/events/delete/"+itoa(eventID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after int64
	require.NoError(t, s.DB.Model(&models.Notification{}).Count(&after).Error)
	assert.Equal(t, before+3, after, "expected one notice per assignee plus one cancellation record")

	// History rows are cleaned up with the event.
	var histories int64
	require.NoError(t, s.DB.Model(&models.VolunteerHistory{}).
		Where("event_id = ?", eventID).Count(&histories).Error)
	assert.Zero(t, histories)

	resp = doJSON(t, s, http.MethodGet, "/events/"+itoa(eventID), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteEventWithNoAssigneesWritesOneRecord(t *testing.T) {
	s := newTestServer(t)
	eventID := createEvent(t, s, "Lonely Event", futureDate(7), 5)

	resp := doJSON(t, s, http.MethodDelete, "/events/delete/"+itoa(eventID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, s.DB.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateEventCannotShrinkBelowCurrentVolunteers(t *testing.T) {
	s := newTestServer(t)
	first := registerUser(t, s, "jamie")
	second := registerUser(t, s, "alex")
	token := loginUser(t, s, "jamie")
	eventID := createEvent(t, s, "Food Drive", futureDate(7), 5)

	for _, uid := range []uint{first, second} {
		resp := doJSON(t, s, http.MethodPost, "/api/match", map[string]any{
			"volunteerId": uid, "eventId": eventID,
		}, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, s, http.MethodPut, "/events/update/"+itoa(eventID), map[string]any{
		"name": "Food Drive", "description": "d", "location": "l",
		"required_skills": []string{"Programming"},
		"urgency":         "High", "date": futureDate(7), "max_volunteers": 1,
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
