package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Free-text fields (names, skill lists) are always quoted so downstream
// spreadsheet imports treat them as text regardless of content.

// quote wraps a value in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func joinList(items []string) string {
	return strings.Join(items, "; ")
}

// VolunteersCSV renders the volunteer participation report as CSV.
func VolunteersCSV(rows []VolunteerRow) []byte {
	var b strings.Builder
	b.WriteString("Volunteer ID,Full Name,Email,Skills,Total Events,Total Hours\r\n")
	for _, r := range rows {
		fields := []string{
			strconv.FormatUint(uint64(r.UserID), 10),
			quote(r.FullName),
			r.Email,
			quote(joinList(r.Skills)),
			strconv.Itoa(r.TotalEvents),
			formatHours(r.TotalHours),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// EventsCSV renders the event roster report as CSV. Each event occupies
// one row per assigned volunteer; events with no volunteers still get a
// single row with blank volunteer columns.
func EventsCSV(rows []EventRow) []byte {
	var b strings.Builder
	b.WriteString("Event ID,Event Name,Date,Location,Urgency,Required Skills,Max Volunteers,Current Volunteers,Volunteer Name,Status,Hours\r\n")
	for _, r := range rows {
		base := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			quote(r.Name),
			r.Date,
			quote(r.Location),
			r.Urgency,
			quote(joinList(r.RequiredSkills)),
			strconv.Itoa(r.MaxVolunteers),
			strconv.Itoa(r.CurrentVolunteers),
		}
		if len(r.Volunteers) == 0 {
			b.WriteString(strings.Join(append(base, "", "", ""), ","))
			b.WriteString("\r\n")
			continue
		}
		for _, v := range r.Volunteers {
			fields := append(append([]string{}, base...),
				quote(v.Name),
				v.Status,
				formatHours(v.Hours),
			)
			b.WriteString(strings.Join(fields, ","))
			b.WriteString("\r\n")
		}
	}
	return []byte(b.String())
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1f", h)
}
