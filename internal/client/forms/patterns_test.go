package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistrationNumber(t *testing.T) {
	valid := []string{"AB12-ABS-000", "FA22-BCS-123"}
	invalid := []string{"AB1-ABS-00", "ab12-abs-000", "AB12ABS000", "", "AB12-ABS-0000"}

	for _, s := range valid {
		assert.True(t, ValidateRegistrationNumber(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidateRegistrationNumber(s), s)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.True(t, ValidatePhoneNumber("+923001234567"))
	assert.False(t, ValidatePhoneNumber("03001234567"))
	assert.False(t, ValidatePhoneNumber("+92300123456"))
	assert.False(t, ValidatePhoneNumber("+9230012345678"))
}
