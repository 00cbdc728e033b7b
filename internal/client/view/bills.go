package view

import (
	"strconv"

	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (p *Printer) Bills(list []models.Bill) {
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			b.Date,
			b.Amount.String(),
			clip(b.Description, 50),
		})
	}
	p.Table([]string{"ID", "DATE", "AMOUNT", "DESCRIPTION"}, rows, "No bills recorded.")
}

func (p *Printer) Bill(b models.Bill) {
	p.Title("Bill #" + strconv.Itoa(b.ID))
	p.Field("Date", b.Date)
	p.Field("Amount", b.Amount.String())
	p.Field("Description", b.Description)
	p.Field("Receipt", b.Image)
}
