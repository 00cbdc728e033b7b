package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

const chartWidth = 30

func (p *Printer) Meetings(list []models.Meeting) {
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			m.Date,
			m.StartTime + " - " + m.EndTime,
			m.Venue,
			clip(m.Agenda, 40),
		})
	}
	p.Table([]string{"ID", "DATE", "TIME", "VENUE", "AGENDA"}, rows, "No meetings recorded yet.")
}

// Meeting prints a meeting with its roll call. names maps user ids to
// display names; unknown ids are shown as "#<id>".
func (p *Printer) Meeting(m models.Meeting, recs []models.AttendanceRecord, names map[int]string) {
	p.Title(fmt.Sprintf("Meeting #%d", m.ID))
	p.Field("Date", m.Date)
	p.Field("Time", strings.Trim(m.StartTime+" - "+m.EndTime, " -"))
	p.Field("Venue", m.Venue)
	p.Field("Agenda", m.Agenda)
	p.Field("Highlights", m.Highlights)

	p.Section("Attendance")
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		name, ok := names[r.User]
		if !ok || name == "" {
			name = "#" + strconv.Itoa(r.User)
		}
		rows = append(rows, []string{strconv.Itoa(r.ID), name, string(r.Status)})
	}
	p.Table([]string{"RECORD", "MEMBER", "STATUS"}, rows, "No attendance recorded.")

	if len(recs) > 0 {
		p.Println()
		p.AttendanceChart(forms.TallyRecords(recs))
	}
}

// AttendanceChart draws one bar per status and the present percentage.
func (p *Printer) AttendanceChart(st forms.AttendanceStats) {
	total := st.Total()
	bars := []struct {
		label string
		n     int
	}{
		{"Present", st.Present},
		{"Absent", st.Absent},
		{"Leave", st.Leave},
	}
	for _, b := range bars {
		fmt.Fprintf(p.w, "%-8s %s %d\n", b.label, bar(b.n, total), b.n)
	}
	fmt.Fprintf(p.w, "Attendance: %d%% (%d/%d present)\n", st.Percentage(), st.Present, total)
}

func bar(n, total int) string {
	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(n) / float64(total) * chartWidth))
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", chartWidth-filled)
}
