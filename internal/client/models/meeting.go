package models

// AttendanceStatus is one member's status for a meeting.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLeave   AttendanceStatus = "LEAVE"
)

// ParseAttendanceStatus accepts the full name or its first letter in any case.
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	switch NormalizeStatus(s) {
	case "PRESENT", "P":
		return StatusPresent, true
	case "ABSENT", "A":
		return StatusAbsent, true
	case "LEAVE", "L":
		return StatusLeave, true
	}
	return "", false
}

// Meeting as returned by the API. Times come back as "02:00 PM".
type Meeting struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Venue      string `json:"venue"`
	Agenda     string `json:"agenda"`
	Highlights string `json:"highlights"`
}

// AttendanceRecord links a user to a meeting with a status.
type AttendanceRecord struct {
	ID      int              `json:"id"`
	Meeting int              `json:"meeting"`
	User    int              `json:"user"`
	Status  AttendanceStatus `json:"status"`
}

// AttendanceEntry is one row of a new meeting's roll.
type AttendanceEntry struct {
	User   int              `json:"user"`
	Status AttendanceStatus `json:"status"`
}

// MeetingCreate is the body of POST /meetings/create/. Times are HH:MM:SS.
type MeetingCreate struct {
	Date       string            `json:"date"`
	StartTime  string            `json:"start_time"`
	EndTime    string            `json:"end_time"`
	Venue      string            `json:"venue"`
	Agenda     string            `json:"agenda"`
	Highlights string            `json:"highlights"`
	Attendance []AttendanceEntry `json:"attendance"`
}

// MeetingUpdate is the body of PATCH /meetings/{id}/.
type MeetingUpdate struct {
	Date       string `json:"date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Venue      string `json:"venue,omitempty"`
	Agenda     string `json:"agenda,omitempty"`
	Highlights string `json:"highlights,omitempty"`
}
