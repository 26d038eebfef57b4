package service

import (
	"context"
	"testing"
	"time"

	"volunteerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(day string) func() time.Time {
	t, _ := time.Parse(models.DateKeyLayout, day)
	return func() time.Time { return t }
}

func newMatchService(users *MockUserRepository, events *MockEventRepository, history *MockHistoryRepository, notifs *MockNotificationRepository) *MatchService {
	svc := NewMatchService(users, events, history, NewNotificationService(notifs, history))
	svc.now = fixedClock("2025-11-30")
	return svc
}

func mustDate(t *testing.T, day string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateKeyLayout, day)
	require.NoError(t, err)
	return d
}

func TestFindMatchesSkillIntersection(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	volunteer := &models.User{
		ID:           7,
		Skills:       []string{"Programming", "Teaching"},
		Availability: []string{"2025-12-01", "2025-12-02"},
	}

	allEvents := []models.Event{
		{ID: 1, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-12-01")},
		{ID: 2, RequiredSkills: []string{"Cooking"}, Date: mustDate(t, "2025-12-01")},
		{ID: 3, RequiredSkills: []string{}, Date: mustDate(t, "2025-12-01")},
		{ID: 4, RequiredSkills: []string{"Teaching"}, Date: mustDate(t, "2025-12-03")},
	}

	users.On("GetByID", mock.Anything, uint(7)).Return(volunteer, nil)
	events.On("List", mock.Anything).Return(allEvents, nil)
	history.On("ListByUser", mock.Anything, uint(7)).Return([]models.VolunteerHistory{}, nil)

	got, err := svc.FindMatches(context.Background(), 7)
	require.NoError(t, err)

	// Event 2 has no skill overlap, 3 has an empty skill list, and 4 falls
	// outside the declared availability.
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].Event.ID)
	assert.False(t, got[0].AlreadyMatched)
}

func TestFindMatchesEmptySkillEventsNeverMatch(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	volunteer := &models.User{ID: 7, Skills: []string{"Programming"}}

	users.On("GetByID", mock.Anything, uint(7)).Return(volunteer, nil)
	events.On("List", mock.Anything).Return([]models.Event{
		{ID: 1, RequiredSkills: []string{}, Date: mustDate(t, "2025-12-01")},
	}, nil)
	history.On("ListByUser", mock.Anything, uint(7)).Return([]models.VolunteerHistory{}, nil)

	got, err := svc.FindMatches(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindMatchesEmptyAvailabilityExcludesPastOnly(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	// No availability entries: treat as always available, future only.
	volunteer := &models.User{ID: 9, Skills: []string{"Programming"}}

	users.On("GetByID", mock.Anything, uint(9)).Return(volunteer, nil)
	events.On("List", mock.Anything).Return([]models.Event{
		{ID: 1, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-12-01")},
		{ID: 2, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-11-29")},
	}, nil)
	history.On("ListByUser", mock.Anything, uint(9)).Return([]models.VolunteerHistory{}, nil)

	got, err := svc.FindMatches(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].Event.ID)
}

func TestFindMatchesPastDateExcludedDespiteAvailability(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	// The availability list contains a past date; the past-date filter
	// still wins.
	volunteer := &models.User{
		ID:           3,
		Skills:       []string{"Programming"},
		Availability: []string{"2025-11-29", "2025-12-01"},
	}

	users.On("GetByID", mock.Anything, uint(3)).Return(volunteer, nil)
	events.On("List", mock.Anything).Return([]models.Event{
		{ID: 1, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-11-29")},
		{ID: 2, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-12-01")},
	}, nil)
	history.On("ListByUser", mock.Anything, uint(3)).Return([]models.VolunteerHistory{}, nil)

	got, err := svc.FindMatches(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].Event.ID)
}

func TestFindMatchesAnnotatesExistingAssignment(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	volunteer := &models.User{ID: 5, Skills: []string{"Programming"}}
	uid := uint(5)

	users.On("GetByID", mock.Anything, uint(5)).Return(volunteer, nil)
	events.On("List", mock.Anything).Return([]models.Event{
		{ID: 1, RequiredSkills: []string{"Programming"}, Date: mustDate(t, "2025-12-01")},
	}, nil)
	history.On("ListByUser", mock.Anything, uint(5)).Return([]models.VolunteerHistory{
		{UserID: &uid, EventID: 1, VolunteerName: "Jamie Rivera"},
	}, nil)

	got, err := svc.FindMatches(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].AlreadyMatched)
	assert.Equal(t, "Jamie Rivera", got[0].MatchedVolunteerName)
}

func TestFindMatchesVolunteerNotFound(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	users.On("GetByID", mock.Anything, uint(42)).Return(nil, models.NewNotFoundError("User", 42))

	_, err := svc.FindMatches(context.Background(), 42)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCreateMatchHappyPath(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	volunteer := &models.User{ID: 5, FullName: "Jamie Rivera"}
	event := &models.Event{
		ID: 1, Name: "Food Drive", Location: "Community Hall",
		Date: mustDate(t, "2025-12-01"), Status: models.EventStatusOpen,
		MaxVolunteers: 10,
	}

	users.On("GetByID", mock.Anything, uint(5)).Return(volunteer, nil)
	events.On("GetByID", mock.Anything, uint(1)).Return(event, nil)
	events.On("RegisterVolunteer", mock.Anything, mock.Anything).Return(nil)
	notifs.On("Create", mock.Anything, mock.Anything).Return(nil)

	h, err := svc.CreateMatch(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, models.HistoryStatusRegistered, h.Status)
	assert.Equal(t, "Jamie Rivera", h.VolunteerName)
	notifs.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateMatchClosedEvent(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	users.On("GetByID", mock.Anything, uint(5)).Return(&models.User{ID: 5}, nil)
	events.On("GetByID", mock.Anything, uint(1)).Return(&models.Event{
		ID: 1, Status: models.EventStatusClosed,
	}, nil)

	_, err := svc.CreateMatch(context.Background(), 5, 1)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	events.AssertNotCalled(t, "RegisterVolunteer", mock.Anything, mock.Anything)
}

func TestCreateMatchConflictPropagates(t *testing.T) {
	users := new(MockUserRepository)
	events := new(MockEventRepository)
	history := new(MockHistoryRepository)
	notifs := new(MockNotificationRepository)
	svc := newMatchService(users, events, history, notifs)

	users.On("GetByID", mock.Anything, uint(5)).Return(&models.User{ID: 5}, nil)
	events.On("GetByID", mock.Anything, uint(1)).Return(&models.Event{
		ID: 1, Status: models.EventStatusOpen, MaxVolunteers: 1,
	}, nil)
	events.On("RegisterVolunteer", mock.Anything, mock.Anything).
		Return(models.NewConflictError("Volunteer already matched to this event"))

	_, err := svc.CreateMatch(context.Background(), 5, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already matched")
	notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
