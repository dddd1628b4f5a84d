package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent(t *testing.T) models.Event {
	t.Helper()
	pricing, err := models.Paid(500)
	require.NoError(t, err)
	attended := true
	stamp := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.Event{
		ID:      1,
		Name:    "Tech Summit  2030",
		Club:    "Computer Science Club",
		Domain:  "Technology",
		Date:    "2030-03-14",
		Time:    "10:00 AM",
		Venue:   "APJ Auditorium",
		Pricing: pricing,
		Registrations: []models.Registration{
			{ID: 11, UserID: 5, TransactionID: "TXN1", Fee: 500, Timestamp: stamp, Attended: &attended},
			{ID: 12, UserID: 6, Fee: 500, Timestamp: stamp},
		},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Tech-Summit-2030-registrations.csv", FileName("Tech Summit  2030", "-registrations.csv"))
}

func TestRegistrationsCSV(t *testing.T) {
	out, err := RegistrationsCSV(sampleEvent(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"11", "5", "Tech Summit  2030", "2030-03-01", "TXN1", "Attended"}, rows[1])
	assert.Equal(t, []string{"12", "6", "Tech Summit  2030", "2030-03-01", "N/A", "Registered"}, rows[2])
}

func TestAnalyticsJSON(t *testing.T) {
	out, err := AnalyticsJSON(sampleEvent(t))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "Tech Summit  2030", got["eventName"])
	assert.Equal(t, "APJ Auditorium", got["venue"])
	assert.Equal(t, float64(2), got["totalRegistrations"])
	assert.Equal(t, float64(1), got["actualAttendance"])
	assert.Equal(t, float64(50), got["attendanceRate"])
	assert.Equal(t, float64(1000), got["totalRevenue"])
	assert.Equal(t, "NeedsImprovement", got["performanceTier"])
}

func TestPermissionLetter(t *testing.T) {
	user := models.User{Name: "Meera", RollNumber: "21CS001", Year: "3rd Year", Branch: "Computer Science"}
	now := time.Date(2030, 3, 2, 9, 0, 0, 0, time.UTC)

	letter, err := PermissionLetter(user, sampleEvent(t), now)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(letter, "PERMISSION LETTER"))
	assert.Contains(t, letter, "Date: 02/03/2030")
	assert.Contains(t, letter, "Subject: Permission to Attend Tech Summit  2030")
	assert.Contains(t, letter, "I, Meera (Roll No: 21CS001), am a 3rd Year student of Computer Science Engineering.")
	assert.Contains(t, letter, "- Date: 14/03/2030")
	assert.Contains(t, letter, "- Venue: APJ Auditorium")
}
