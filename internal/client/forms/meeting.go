package forms

import (
	"sort"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

// Meeting is the mark-attendance form. Times are split into a clock value
// ("2:00") and an AM/PM period, as entered.
type Meeting struct {
	Date        string `label:"date" validate:"required,datetime=2006-01-02"`
	StartClock  string `label:"start time" validate:"clock"`
	StartPeriod string `label:"start period" validate:"oneof=AM PM"`
	EndClock    string `label:"end time" validate:"clock"`
	EndPeriod   string `label:"end period" validate:"oneof=AM PM"`
	Venue       string `label:"venue" validate:"required,max=50"`
	Agenda      string `label:"agenda" validate:"required"`
	Highlights  string `label:"highlights" validate:"required"`

	// Attendance maps user id to status; every listed member must be marked.
	Attendance map[int]models.AttendanceStatus `label:"attendance"`
}

func (m Meeting) Validate() error {
	var unmarked string
	for _, st := range m.Attendance {
		if st == "" {
			unmarked = "mark attendance for all students"
			break
		}
	}
	return check(m, unmarked)
}

// Payload builds the create body with 24-hour times.
func (m Meeting) Payload() models.MeetingCreate {
	entries := make([]models.AttendanceEntry, 0, len(m.Attendance))
	for user, st := range m.Attendance {
		entries = append(entries, models.AttendanceEntry{User: user, Status: st})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].User < entries[j].User })

	return models.MeetingCreate{
		Date:       m.Date,
		StartTime:  To24Hour(m.StartClock + " " + strings.ToUpper(m.StartPeriod)),
		EndTime:    To24Hour(m.EndClock + " " + strings.ToUpper(m.EndPeriod)),
		Venue:      m.Venue,
		Agenda:     m.Agenda,
		Highlights: m.Highlights,
		Attendance: entries,
	}
}

// Stats tallies the marks made so far.
func (m Meeting) Stats() AttendanceStats {
	statuses := make([]models.AttendanceStatus, 0, len(m.Attendance))
	for _, st := range m.Attendance {
		statuses = append(statuses, st)
	}
	return Tally(statuses)
}

// MeetingEdit is the edit-meeting form. Times are HH:MM (24h) and sent with
// seconds appended.
type MeetingEdit struct {
	Date       string `label:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime  string `label:"start time" validate:"omitempty,datetime=15:04"`
	EndTime    string `label:"end time" validate:"omitempty,datetime=15:04"`
	Venue      string `label:"venue" validate:"omitempty,max=50"`
	Agenda     string `label:"agenda"`
	Highlights string `label:"highlights"`
}

func (m MeetingEdit) Validate() error {
	var empty string
	if m == (MeetingEdit{}) {
		empty = "nothing to update"
	}
	return check(m, empty)
}

func (m MeetingEdit) Payload() models.MeetingUpdate {
	return models.MeetingUpdate{
		Date:       m.Date,
		StartTime:  WithSeconds(m.StartTime),
		EndTime:    WithSeconds(m.EndTime),
		Venue:      m.Venue,
		Agenda:     m.Agenda,
		Highlights: m.Highlights,
	}
}
