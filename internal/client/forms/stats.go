package forms

import (
	"math"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

type AttendanceStats struct {
	Present int
	Absent  int
	Leave   int
}

func (s AttendanceStats) Total() int {
	return s.Present + s.Absent + s.Leave
}

// Percentage is the rounded share of present members, 0 when nobody was marked.
func (s AttendanceStats) Percentage() int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Present) / float64(total) * 100))
}

// Tally counts statuses. Unknown statuses are ignored.
func Tally(statuses []models.AttendanceStatus) AttendanceStats {
	var s AttendanceStats
	for _, st := range statuses {
		switch st {
		case models.StatusPresent:
			s.Present++
		case models.StatusAbsent:
			s.Absent++
		case models.StatusLeave:
			s.Leave++
		}
	}
	return s
}

// TallyRecords counts the statuses of existing attendance records.
func TallyRecords(recs []models.AttendanceRecord) AttendanceStats {
	statuses := make([]models.AttendanceStatus, len(recs))
	for i, r := range recs {
		statuses[i] = r.Status
	}
	return Tally(statuses)
}
