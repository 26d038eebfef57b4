package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notifBody struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Dismissed bool   `json:"dismissed"`
}

func TestNotificationLifecycle(t *testing.T) {
	s := newTestServer(t)
	userID := registerUser(t, s, "jamie")

	resp := doJSON(t, s, http.MethodPost, "/notifs/create", map[string]any{
		"userId":  userID,
		"title":   "Welcome",
		"message": "Thanks for signing up",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created notifBody
	decodeBody(t, resp, &created)
	require.NotZero(t, created.ID)

	resp = doJSON(t, s, http.MethodGet, "/notifs/all?userId="+itoa(userID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []notifBody
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Welcome", listed[0].Title)

	// Dismissal is durable: the notification never reappears.
	resp = doJSON(t, s, http.MethodPut, "/notifs/dismiss/"+itoa(created.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, s, http.MethodGet, "/notifs/all?userId="+itoa(userID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)
}

func TestDismissUnknownNotification404(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodPut, "/notifs/dismiss/999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNotifyMatchedBulk(t *testing.T) {
	s := newTestServer(t)
	first := registerUser(t, s, "jamie")
	second := registerUser(t, s, "alex")

	resp := doJSON(t, s, http.MethodPost, "/notifs/matched", map[string]any{
		"userIds": []uint{first, second},
		"title":   "Matched",
		"message": "You have been assigned",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Sent int `json:"sent"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Sent)

	for _, uid := range []uint{first, second} {
		resp = doJSON(t, s, http.MethodGet, "/notifs/all?userId="+itoa(uid), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var listed []notifBody
		decodeBody(t, resp, &listed)
		assert.Len(t, listed, 1)
	}
}

func TestNotifsAllRequiresUserID(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodGet, "/notifs/all", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotifyEventDeletedFanOut(t *testing.T) {
	s := newTestServer(t)
	userID := registerUser(t, s, "jamie")
	token := loginUser(t, s, "jamie")
	eventID := createEvent(t, s, "Food Drive", futureDate(7), 5)

	resp := doJSON(t, s, http.MethodPost, "/api/match", map[string]any{
		"volunteerId": userID, "eventId": eventID,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, s, http.MethodPost, "/notifs/delete", map[string]any{
		"eventId": eventID,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Notified int `json:"notified"`
	}
	decodeBody(t, resp, &body)
	// One assignee notice plus the cancellation audit record.
	assert.Equal(t, 2, body.Notified)
}

func TestNotifyEventDeletedUnknownEvent404(t *testing.T) {
	s := newTestServer(t)

	resp := doJSON(t, s, http.MethodPost, "/notifs/delete", map[string]any{
		"eventId": 9999,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
