// Package export renders event data for download: a permission letter for
// students, the registration sheet and the analytics summary for organizers.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"text/template"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/lifecycle"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

const letterDateLayout = "02/01/2006"

var whitespace = regexp.MustCompile(`\s+`)

// FileName builds a download name such as "Tech-Summit-2024-registrations.csv".
func FileName(eventName, suffix string) string {
	return whitespace.ReplaceAllString(eventName, "-") + suffix
}

var letterTemplate = template.Must(template.New("letter").Parse(`PERMISSION LETTER

Date: {{.Today}}

To,
The Head of Department,
{{.User.Branch}} Engineering,
[College Name]

Subject: Permission to Attend {{.Event.Name}}

Respected Sir/Madam,

I, {{.User.Name}} (Roll No: {{.User.RollNumber}}), am a {{.User.Year}} student of {{.User.Branch}} Engineering. I would like to seek your permission to attend "{{.Event.Name}}" organized by {{.Event.Club}}.

Event Details:
- Event Name: {{.Event.Name}}
- Date: {{.EventDate}}
- Time: {{.Event.Time}}
- Venue: {{.Event.Venue}}
- Domain: {{.Event.Domain}}

I believe this event will be beneficial for my academic and professional growth. I assure you that I will not miss any important classes and will complete any pending assignments.

Thank you for your consideration.

Yours sincerely,
{{.User.Name}}
Roll No: {{.User.RollNumber}}
{{.User.Year}}, {{.User.Branch}} Engineering
`))

func PermissionLetter(user models.User, ev models.Event, now time.Time) (string, error) {
	eventDate := ev.Date
	if at, err := lifecycle.EventTime(ev); err == nil {
		eventDate = at.Format(letterDateLayout)
	}

	var buf bytes.Buffer
	err := letterTemplate.Execute(&buf, struct {
		User      models.User
		Event     models.Event
		Today     string
		EventDate string
	}{user, ev, now.Format(letterDateLayout), eventDate})
	if err != nil {
		return "", fmt.Errorf("render permission letter: %w", err)
	}
	return buf.String(), nil
}

var csvHeader = []string{"Registration ID", "User ID", "Event Name", "Registration Date", "Transaction ID", "Status"}

func RegistrationsCSV(ev models.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range ev.Registrations {
		transactionID := r.TransactionID
		if transactionID == "" {
			transactionID = "N/A"
		}
		status := "Registered"
		if r.HasAttended() {
			status = "Attended"
		}
		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			ev.Name,
			r.Timestamp.Format(models.DateLayout),
			transactionID,
			status,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write registrations csv: %w", err)
	}
	return buf.Bytes(), nil
}

func AnalyticsJSON(ev models.Event) ([]byte, error) {
	out, err := json.MarshalIndent(lifecycle.Summarize(ev), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode analytics: %w", err)
	}
	return out, nil
}
