package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page-break thresholds in points on a Letter page (792pt tall). A new
// page starts before a top-level record past recordBreakY and before a
// detail line past lineBreakY, keeping records visually grouped.
const (
	recordBreakY = 700.0
	lineBreakY   = 750.0

	marginLeft = 50.0
	topY       = 50.0
	lineHeight = 14.0
)

func newDoc(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.SetXY(marginLeft, topY)
	doc.CellFormat(0, 20, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetX(marginLeft)
	doc.CellFormat(0, 12, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	doc.SetY(doc.GetY() + 10)
	return doc
}

func recordBreak(doc *fpdf.Fpdf) {
	if doc.GetY() > recordBreakY {
		doc.AddPage()
		doc.SetY(topY)
	}
}

func lineBreak(doc *fpdf.Fpdf) {
	if doc.GetY() > lineBreakY {
		doc.AddPage()
		doc.SetY(topY)
	}
}

func writeLine(doc *fpdf.Fpdf, indent float64, text string) {
	doc.SetX(marginLeft + indent)
	doc.CellFormat(0, lineHeight, text, "", 1, "L", false, 0, "")
}

func buildVolunteersDoc(rows []VolunteerRow) *fpdf.Fpdf {
	doc := newDoc("Volunteer Participation Report")
	for _, r := range rows {
		recordBreak(doc)
		doc.SetFont("Helvetica", "B", 11)
		writeLine(doc, 0, fmt.Sprintf("%s  <%s>", r.FullName, r.Email))
		doc.SetFont("Helvetica", "", 10)
		writeLine(doc, 10, "Skills: "+joinList(r.Skills))
		writeLine(doc, 10, fmt.Sprintf("Events: %d    Hours: %s", r.TotalEvents, formatHours(r.TotalHours)))
		for _, p := range r.Participation {
			lineBreak(doc)
			writeLine(doc, 20, fmt.Sprintf("- %s (%s)  %s, %s hrs", p.EventName, p.EventDate, p.Status, formatHours(p.Hours)))
		}
		doc.SetY(doc.GetY() + 6)
	}
	return doc
}

func buildEventsDoc(rows []EventRow) *fpdf.Fpdf {
	doc := newDoc("Event Assignments Report")
	for _, r := range rows {
		recordBreak(doc)
		doc.SetFont("Helvetica", "B", 11)
		writeLine(doc, 0, fmt.Sprintf("%s  (%s)", r.Name, r.Date))
		doc.SetFont("Helvetica", "", 10)
		writeLine(doc, 10, "Location: "+r.Location+"    Urgency: "+r.Urgency)
		writeLine(doc, 10, "Required skills: "+joinList(r.RequiredSkills))
		writeLine(doc, 10, "Volunteers: "+strconv.Itoa(r.CurrentVolunteers)+" / "+strconv.Itoa(r.MaxVolunteers))
		for _, v := range r.Volunteers {
			lineBreak(doc)
			writeLine(doc, 20, fmt.Sprintf("- %s  %s, %s hrs", v.Name, v.Status, formatHours(v.Hours)))
		}
		doc.SetY(doc.GetY() + 6)
	}
	return doc
}

// VolunteersPDF renders the volunteer participation report as a PDF.
func VolunteersPDF(rows []VolunteerRow) ([]byte, error) {
	return render(buildVolunteersDoc(rows))
}

// EventsPDF renders the event assignments report as a PDF.
func EventsPDF(rows []EventRow) ([]byte, error) {
	return render(buildEventsDoc(rows))
}

func render(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
