package forms

import "regexp"

var (
	regNoPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}-[A-Z]{3}-\d{3}$`)
	phonePattern = regexp.MustCompile(`^\+92[0-9]{10}$`)
	clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// ValidateRegistrationNumber accepts "AB12-ABS-000" style numbers.
func ValidateRegistrationNumber(s string) bool {
	return regNoPattern.MatchString(s)
}

// ValidatePhoneNumber accepts Pakistani numbers in +92XXXXXXXXXX form.
func ValidatePhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}
