package forms

import (
	"testing"

	"github.com/acmchapter/chapterdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceStats_Percentage(t *testing.T) {
	tests := []struct {
		stats AttendanceStats
		want  int
	}{
		{AttendanceStats{Present: 3, Absent: 1}, 75},
		{AttendanceStats{}, 0},
		{AttendanceStats{Present: 1, Absent: 1, Leave: 1}, 33},
		{AttendanceStats{Present: 2, Leave: 1}, 67},
		{AttendanceStats{Absent: 4}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.stats.Percentage(), "%+v", tt.stats)
	}
}

func TestTallyRecords(t *testing.T) {
	recs := []models.AttendanceRecord{
		{Status: models.StatusPresent},
		{Status: models.StatusPresent},
		{Status: models.StatusLeave},
		{Status: models.StatusAbsent},
		{Status: "LATE"},
	}
	s := TallyRecords(recs)
	assert.Equal(t, AttendanceStats{Present: 2, Absent: 1, Leave: 1}, s)
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, 50, s.Percentage())
}
