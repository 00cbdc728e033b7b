package view

import (
	"sort"
	"strconv"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (p *Printer) Students(list []models.Student) {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.User.FullName(),
			s.RollNo,
			s.Club,
			s.Title,
			string(s.User.Role),
		})
	}
	p.Table([]string{"ID", "NAME", "ROLL NO", "CLUB", "TITLE", "ROLE"}, rows, "No members found.")
}

func (p *Printer) Student(s models.Student) {
	p.Title(s.User.FullName())
	p.Field("ID", strconv.Itoa(s.ID))
	p.Field("Username", s.User.Username)
	p.Field("Email", s.User.Email)
	p.Field("Phone", s.User.PhoneNumber)
	p.Field("Role", string(s.User.Role))
	p.Field("Roll no", s.RollNo)
	p.Field("Club", s.Club)
	p.Field("Title", s.Title)
	p.Field("Picture", s.ProfilePic)
	if s.ProfileDesc != "" {
		p.Section("About")
		p.Println(s.ProfileDesc)
	}
}

// Team prints the public roster: executives first, then one section per club.
func (p *Printer) Team(list []models.PublicStudent) {
	if len(list) == 0 {
		p.Note("No team members to show.")
		return
	}

	var execs []models.PublicStudent
	byClub := map[string][]models.PublicStudent{}
	for _, s := range list {
		if models.IsExecutiveTitle(strings.ToUpper(s.Title)) {
			execs = append(execs, s)
			continue
		}
		club := s.Club
		if club == "" {
			club = "members"
		}
		byClub[club] = append(byClub[club], s)
	}

	if len(execs) > 0 {
		sort.SliceStable(execs, func(i, j int) bool {
			return execRank(execs[i].Title) < execRank(execs[j].Title)
		})
		p.Section("Executive council")
		p.teamTable(execs)
	}

	clubs := make([]string, 0, len(byClub))
	for c := range byClub {
		clubs = append(clubs, c)
	}
	sort.Strings(clubs)
	for _, c := range clubs {
		p.Section(ClubLabel(c))
		p.teamTable(byClub[c])
	}
}

func (p *Printer) teamTable(list []models.PublicStudent) {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{s.FullName, s.Title})
	}
	p.Table([]string{"NAME", "TITLE"}, rows, "")
}

func execRank(title string) int {
	t := strings.ToUpper(title)
	for i, e := range models.ExecutiveTitles {
		if e == t {
			return i
		}
	}
	return len(models.ExecutiveTitles)
}

// ClubLabel turns "social_media_and_marketing" into "Social Media And Marketing".
func ClubLabel(club string) string {
	words := strings.Fields(strings.ReplaceAll(club, "_", " "))
	for i, w := range words {
		if w == "and" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
