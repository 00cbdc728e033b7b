package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var twelveHour = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*([AP]M)$`)
var twentyFourHour = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// To24Hour converts "2:00 PM" to "14:00:00" and "12:00 AM" to "00:00:00".
// Anything else yields "".
func To24Hour(s string) string {
	m := twelveHour.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	hours, _ := strconv.Atoi(m[1])
	pm := strings.EqualFold(m[3], "PM")

	if pm && hours < 12 {
		hours += 12
	}
	if !pm && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%s:00", hours, m[2])
}

// ClockTo24Hour normalises an event time to HH:MM. 24-hour input ("09:30" or
// "09:30:00") is cut to five characters; 12-hour input ("9:30 PM") is
// converted. Empty input yields "".
func ClockTo24Hour(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if twentyFourHour.MatchString(s) {
		return s[:5]
	}

	clock, modifier, _ := strings.Cut(s, " ")
	hours, minutes, _ := strings.Cut(clock, ":")
	if hours == "12" {
		hours = "00"
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return ""
	}
	if strings.EqualFold(modifier, "PM") {
		h += 12
	}
	return fmt.Sprintf("%02d:%s", h, minutes)
}

// WithSeconds pads "HH:MM" to "HH:MM:00" and leaves other input alone.
func WithSeconds(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}
