package view

import (
	"strconv"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (p *Printer) RecruitmentSession(s models.RecruitmentSession) {
	p.Title("Recruitment " + s.UniSession)
	p.Field("ID", strconv.Itoa(s.ID))
	p.Field("Applications", span(s.ApplicationStart, s.ApplicationEnd))
	p.Field("Interviews", span(s.InterviewStart, s.InterviewEnd))
	p.Field("Results", s.ResultDate)
}

func (p *Printer) Applications(list []models.Application) {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			strconv.Itoa(a.ID),
			a.FullName(),
			a.AcademicInfo.RegNo,
			a.RolePreferences.PreferredRole,
			a.Status.Label(),
			shortDate(a.SubmittedAt),
		})
	}
	p.Table([]string{"ID", "NAME", "REG NO", "ROLE", "STATUS", "SUBMITTED"}, rows, "No applications match.")
}

func (p *Printer) Application(a models.Application) {
	p.Title(a.FullName())
	p.Field("ID", strconv.Itoa(a.ID))
	p.Field("Status", a.Status.Label())
	p.Field("Submitted", shortDate(a.SubmittedAt))

	p.Section("Personal")
	p.Field("Email", a.PersonalInfo.Email)
	p.Field("Phone", a.PersonalInfo.PhoneNumber)

	p.Section("Academic")
	p.Field("Reg no", a.AcademicInfo.RegNo)
	p.Field("Program", a.AcademicInfo.Program)
	if a.AcademicInfo.CurrentSemester > 0 {
		p.Field("Semester", strconv.Itoa(a.AcademicInfo.CurrentSemester))
	}
	p.Field("Skills", strings.Join(a.AcademicInfo.Skills, ", "))
	p.Field("Coursework", strings.Join(a.AcademicInfo.RelevantCoursework, ", "))

	rp := a.RolePreferences
	p.Section("Role preferences")
	p.Field("Preferred", rp.PreferredRole)
	p.Field("Secondary", rp.SecondaryRole)
	p.Field("Availability", rp.WeeklyAvailability)
	p.Field("LinkedIn", rp.LinkedinProfile)
	p.Field("Purpose", rp.JoinPurpose)
	p.Field("Experience", rp.PreviousExperience)
}

func (p *Printer) RecruitmentStats(st models.RecruitmentStats) {
	rows := [][]string{
		{"Total", strconv.Itoa(st.Total)},
		{models.AppUnderReview.Label(), strconv.Itoa(st.UnderReview)},
		{models.AppInterviews.Label(), strconv.Itoa(st.Interviews)},
		{models.AppAccepted.Label(), strconv.Itoa(st.Accepted)},
		{models.AppRejected.Label(), strconv.Itoa(st.Rejected)},
	}
	p.Table([]string{"STATUS", "COUNT"}, rows, "")
}

func span(from, to string) string {
	from, to = shortDate(from), shortDate(to)
	if from == "" || to == "" {
		return from + to
	}
	return from + " to " + to
}
