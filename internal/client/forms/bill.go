package forms

import (
	"strconv"
	"strings"

	"github.com/acmchapter/chapterdesk/internal/client/api"
)

// Bill is the create/edit bill form. The receipt is mandatory on create.
type Bill struct {
	Description string `label:"description" validate:"required,max=200"`
	Amount      string `label:"amount" validate:"required,numeric"`
	Date        string `label:"date" validate:"required,datetime=2006-01-02"`
	Receipt     string `label:"receipt" validate:"omitempty,file"`
}

// Validate checks the form; requireReceipt is set when creating.
func (b Bill) Validate(requireReceipt bool) error {
	var extra []string
	if requireReceipt && b.Receipt == "" {
		extra = append(extra, "receipt is required")
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(b.Amount), 64); err == nil && v < 0 {
		extra = append(extra, "amount cannot be negative")
	}
	return check(b, extra...)
}

func (b Bill) Payload() api.BillDraft {
	return api.BillDraft{
		Description: strings.TrimSpace(b.Description),
		Amount:      strings.TrimSpace(b.Amount),
		Date:        b.Date,
		Receipt:     b.Receipt,
	}
}
