package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/acmchapter/chapterdesk/internal/client/services"
)

func newTestPrinter(t *testing.T) (*Printer, *bytes.Buffer) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	return New(&buf, ThemeLight), &buf
}

func TestParseTheme(t *testing.T) {
	th, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, th)

	_, ok = ParseTheme("solarized")
	assert.False(t, ok)

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestPrinter_SetThemeFallsBackToLight(t *testing.T) {
	p, _ := newTestPrinter(t)
	p.SetTheme("neon")
	assert.Equal(t, ThemeLight, p.Theme())
	p.SetTheme(ThemeDark)
	assert.Equal(t, ThemeDark, p.Theme())
}

func TestTable_EmptyPrintsNote(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Bills(nil)
	assert.Equal(t, "No bills recorded.\n", buf.String())
}

func TestStudents_Table(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Students([]models.Student{{
		ID:     4,
		User:   models.User{FirstName: "Sara", LastName: "Khan", Role: models.RoleLead},
		RollNo: "FA21-BCS-001",
		Club:   "codehub",
	}})
	out := buf.String()
	for _, want := range []string{"NAME", "Sara Khan", "FA21-BCS-001", "codehub", "LEAD"} {
		assert.Contains(t, out, want)
	}
}

func TestField_SkipsEmpty(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Field("Venue", "")
	p.Field("Venue", "Lab 3")
	assert.Equal(t, "Venue:         Lab 3\n", buf.String())
}

func TestTeam_ExecutivesFirstThenClubs(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Team([]models.PublicStudent{
		{FullName: "Web Member", Club: "codehub"},
		{FullName: "Sec", Title: "SECRETARY"},
		{FullName: "Pres", Title: "PRESIDENT"},
		{FullName: "Designer", Club: "graphics_and_media"},
	})
	out := buf.String()

	iExec := strings.Index(out, "Executive council")
	iPres := strings.Index(out, "Pres")
	iSec := strings.Index(out, "Sec")
	iCode := strings.Index(out, "Codehub")
	iGfx := strings.Index(out, "Graphics and Media")
	assert.True(t, iExec >= 0 && iExec < iPres && iPres < iSec && iSec < iCode && iCode < iGfx, out)
}

func TestClubLabel(t *testing.T) {
	assert.Equal(t, "Social Media and Marketing", ClubLabel("social_media_and_marketing"))
	assert.Equal(t, "", ClubLabel(""))
}

func TestAttendanceChart(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.AttendanceChart(forms.AttendanceStats{Present: 3, Absent: 1})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Present  "+strings.Repeat("█", 23)+strings.Repeat("░", 7)+" 3", lines[0])
	assert.Equal(t, "Leave    "+strings.Repeat("░", 30)+" 0", lines[2])
	assert.Equal(t, "Attendance: 75% (3/4 present)", lines[3])
}

func TestAttendanceChart_NobodyMarked(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.AttendanceChart(forms.AttendanceStats{})
	assert.Contains(t, buf.String(), "Attendance: 0% (0/0 present)")
}

func TestMeeting_UnknownUserShownByID(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Meeting(
		models.Meeting{ID: 9, Date: "2025-03-01", StartTime: "02:00 PM", EndTime: "03:00 PM", Venue: "Lab 3"},
		[]models.AttendanceRecord{{ID: 1, User: 5, Status: models.StatusPresent}, {ID: 2, User: 6, Status: models.StatusLeave}},
		map[int]string{5: "Sara Khan"},
	)
	out := buf.String()
	assert.Contains(t, out, "Meeting #9")
	assert.Contains(t, out, "02:00 PM - 03:00 PM")
	assert.Contains(t, out, "Sara Khan")
	assert.Contains(t, out, "#6")
	assert.Contains(t, out, "Attendance: 50% (1/2 present)")
}

func TestBlog_RendersPlainText(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Blog(models.Blog{
		ID:        3,
		Title:     "Hello",
		Content:   "<p>First &amp; foremost</p>",
		Author:    "sara",
		CreatedAt: "2025-02-01T10:00:00Z",
		UpdatedAt: "2025-02-01T10:00:00Z",
	})
	out := buf.String()
	assert.Contains(t, out, "Author:        sara")
	assert.Contains(t, out, "Created:       2025-02-01")
	assert.NotContains(t, out, "Updated")
	assert.Contains(t, out, "First & foremost")
}

func TestBlogAuthor_PrefersObject(t *testing.T) {
	b := models.Blog{CreatedBy: models.BlogAuthor{Username: "obj"}, Author: "flat"}
	assert.Equal(t, "obj", BlogAuthor(b))
	b.CreatedBy = models.BlogAuthor{}
	assert.Equal(t, "flat", BlogAuthor(b))
}

func TestEvent_CleansLists(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.Event(models.Event{
		ID:       1,
		Title:    "Hackathon",
		TimeFrom: "10:00",
		TimeTo:   "18:00",
		Hosts:    []string{`["Ali"]`, "Sara"},
		Tags:     []string{" "},
	})
	out := buf.String()
	assert.Contains(t, out, "10:00 - 18:00")
	assert.Contains(t, out, "Hosts:         Ali, Sara")
	assert.NotContains(t, out, "Tags:")
}

func TestRecruitmentStats(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.RecruitmentStats(models.RecruitmentStats{Total: 5, UnderReview: 2, Accepted: 3})
	out := buf.String()
	assert.Contains(t, out, "Under Review")
	assert.Contains(t, out, "Accepted")
}

func TestSearchResults_ReportsFailedSide(t *testing.T) {
	p, buf := newTestPrinter(t)
	p.SearchResults(services.SearchResults{
		Blogs:     []models.Blog{{ID: 1, Title: "Go tips"}},
		EventsErr: errors.New("server unavailable"),
	})
	out := buf.String()
	assert.Contains(t, out, "Go tips")
	assert.Contains(t, out, "Events unavailable: server unavailable")
}
