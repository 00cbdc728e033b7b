package models

import (
	"regexp"
	"strings"
)

// ApplicationStatus is a recruitment application's review state.
type ApplicationStatus string

const (
	AppUnderReview ApplicationStatus = "UNDER_REVIEW"
	AppInterviews  ApplicationStatus = "INTERVIEWS"
	AppAccepted    ApplicationStatus = "ACCEPTED"
	AppRejected    ApplicationStatus = "REJECTED"
)

var statusSeparators = regexp.MustCompile(`[\s-]+`)

// NormalizeStatus trims, upper-cases and turns runs of spaces or hyphens into
// underscores, so "Under Review" and "under-review" both become UNDER_REVIEW.
func NormalizeStatus(s string) string {
	return statusSeparators.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "_")
}

// ParseApplicationStatus normalizes s and checks it is a known status.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch st := ApplicationStatus(NormalizeStatus(s)); st {
	case AppUnderReview, AppInterviews, AppAccepted, AppRejected:
		return st, true
	}
	return "", false
}

// Label is the human form of a status.
func (s ApplicationStatus) Label() string {
	switch ApplicationStatus(NormalizeStatus(string(s))) {
	case AppUnderReview:
		return "Under Review"
	case AppInterviews:
		return "Interviews"
	case AppAccepted:
		return "Accepted"
	case AppRejected:
		return "Rejected"
	}
	return string(s)
}

type RecruitmentSession struct {
	ID               int    `json:"id"`
	UniSession       string `json:"uni_session"`
	ApplicationStart string `json:"application_start"`
	ApplicationEnd   string `json:"application_end"`
	InterviewStart   string `json:"interview_start"`
	InterviewEnd     string `json:"interview_end"`
	ResultDate       string `json:"result_date"`
}

type PersonalInfo struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type AcademicInfo struct {
	RegNo              string   `json:"reg_no"`
	CurrentSemester    int      `json:"current_semester"`
	Program            string   `json:"program"`
	Skills             []string `json:"skills"`
	RelevantCoursework []string `json:"relevant_coursework"`
}

type RolePreferences struct {
	PreferredRole      string `json:"preferred_role"`
	SecondaryRole      string `json:"secondary_role"`
	JoinPurpose        string `json:"join_purpose"`
	PreviousExperience string `json:"previous_experience"`
	WeeklyAvailability string `json:"weekly_availability"`
	LinkedinProfile    string `json:"linkedin_profile"`
}

type Application struct {
	ID                 int               `json:"id"`
	RecruitmentSession int               `json:"recruitment_session"`
	Status             ApplicationStatus `json:"status"`
	SubmittedAt        string            `json:"submitted_at"`
	PersonalInfo       PersonalInfo      `json:"personal_info"`
	AcademicInfo       AcademicInfo      `json:"academic_info"`
	RolePreferences    RolePreferences   `json:"role_preferences"`
}

// FullName joins the applicant's names.
func (a Application) FullName() string {
	return strings.TrimSpace(a.PersonalInfo.FirstName + " " + a.PersonalInfo.LastName)
}

// Matches reports whether the case-insensitive query occurs in the
// applicant's name, email, registration number or preferred role.
func (a Application) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range []string{a.FullName(), a.PersonalInfo.Email, a.AcademicInfo.RegNo, a.RolePreferences.PreferredRole} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ApplicationStatusEntry is a row of GET /recruitment/application-status/.
type ApplicationStatusEntry struct {
	ID                 int               `json:"id"`
	RecruitmentSession int               `json:"recruitment_session"`
	Status             ApplicationStatus `json:"status"`
}

// RecruitmentStats are counts over one session's applications.
type RecruitmentStats struct {
	Total       int
	UnderReview int
	Interviews  int
	Accepted    int
	Rejected    int
}

// CountStatuses tallies entries belonging to session.
func CountStatuses(entries []ApplicationStatusEntry, session int) RecruitmentStats {
	var st RecruitmentStats
	for _, e := range entries {
		if e.RecruitmentSession != session {
			continue
		}
		st.Total++
		switch ApplicationStatus(NormalizeStatus(string(e.Status))) {
		case AppUnderReview:
			st.UnderReview++
		case AppInterviews:
			st.Interviews++
		case AppAccepted:
			st.Accepted++
		case AppRejected:
			st.Rejected++
		}
	}
	return st
}
