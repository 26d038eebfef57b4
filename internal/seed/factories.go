package seed

import (
	"fmt"
	"time"

	"volunteerhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

var skillPool = []string{
	"Programming", "Teaching", "Cooking", "First Aid", "Driving",
	"Gardening", "Carpentry", "Translation", "Fundraising", "Photography",
}

func pickSkills(n int) []string {
	skills := make([]string, 0, n)
	seen := map[string]bool{}
	for len(skills) < n {
		s := skillPool[gofakeit.Number(0, len(skillPool)-1)]
		if !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	return skills
}

func futureDates(n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d := time.Now().AddDate(0, 0, gofakeit.Number(1, 90))
		dates = append(dates, d.Format(models.DateKeyLayout))
	}
	return dates
}

// FakeVolunteer builds a volunteer with realistic profile data. The
// password for every generated account is "Volunteer#Pass1".
func FakeVolunteer() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Volunteer#Pass1"), bcrypt.DefaultCost)
	return &models.User{
		Username:     gofakeit.Username(),
		Email:        gofakeit.Email(),
		Password:     string(hash),
		Role:         models.UserRoleVolunteer,
		FullName:     gofakeit.Name(),
		Address1:     gofakeit.Street(),
		City:         gofakeit.City(),
		StateCode:    gofakeit.StateAbr(),
		Zip:          gofakeit.Zip(),
		Skills:       pickSkills(gofakeit.Number(1, 4)),
		Preferences:  gofakeit.Sentence(8),
		Availability: futureDates(gofakeit.Number(0, 5)),
	}
}

// FakeEvent builds an open event dated within the next three months.
func FakeEvent() *models.Event {
	urgencies := []models.EventUrgency{
		models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh, models.UrgencyUrgent,
	}
	return &models.Event{
		Name:           fmt.Sprintf("%s %s Drive", gofakeit.City(), gofakeit.NounAbstract()),
		Description:    gofakeit.Paragraph(1, 3, 10, " "),
		Location:       fmt.Sprintf("%s, %s", gofakeit.Street(), gofakeit.City()),
		RequiredSkills: pickSkills(gofakeit.Number(1, 3)),
		Urgency:        urgencies[gofakeit.Number(0, len(urgencies)-1)],
		Date:           time.Now().AddDate(0, 0, gofakeit.Number(1, 90)).Truncate(24 * time.Hour),
		MaxVolunteers:  gofakeit.Number(3, 25),
		Status:         models.EventStatusOpen,
	}
}
