package exporter

import (
	"strconv"

	"github.com/shopspring/decimal"

	"loanexport/internal/models"
)

var scheduleColumns = []string{
	"Installment",
	"Due Date",
	"Principal Due",
	"Interest Due",
	"Fees Due",
	"Penalties Due",
	"Total Due",
	"Principal Outstanding",
}

var statementColumns = []string{
	"Date",
	"Transaction Type",
	"Amount",
	"Principal",
	"Interest",
	"Fees",
	"Penalties",
	"Principal Outstanding",
}

// BuildScheduleTable converts schedule rows into render-ready cells and
// computes the TOTAL footer once, so every format reports identical
// sums.
func BuildScheduleTable(rows []models.ScheduleRow) models.Table {
	t := models.Table{Columns: scheduleColumns}

	var principal, interest, fees, penalties, total decimal.Decimal
	for _, r := range rows {
		principal = principal.Add(r.PrincipalDue)
		interest = interest.Add(r.InterestDue)
		fees = fees.Add(r.FeesDue)
		penalties = penalties.Add(r.PenaltiesDue)
		total = total.Add(r.TotalDue)

		t.Rows = append(t.Rows, []models.Cell{
			models.TextCell(strconv.Itoa(r.Installment)),
			models.TextCell(r.DueDate),
			models.MoneyCell(r.PrincipalDue),
			models.MoneyCell(r.InterestDue),
			models.MoneyCell(r.FeesDue),
			models.MoneyCell(r.PenaltiesDue),
			models.MoneyCell(r.TotalDue),
			models.MoneyCell(r.PrincipalOutstanding),
		})
	}

	t.Totals = []models.Cell{
		models.TextCell("TOTAL"),
		models.TextCell(""),
		models.MoneyCell(principal),
		models.MoneyCell(interest),
		models.MoneyCell(fees),
		models.MoneyCell(penalties),
		models.MoneyCell(total),
		models.TextCell(""),
	}
	return t
}

// BuildStatementTable converts statement rows into render-ready cells.
// Statements carry no totals footer.
func BuildStatementTable(rows []models.StatementRow) models.Table {
	t := models.Table{Columns: statementColumns}
	for _, r := range rows {
		t.Rows = append(t.Rows, []models.Cell{
			models.TextCell(r.Date),
			models.TextCell(r.TypeLabel),
			models.MoneyCell(r.Amount),
			models.MoneyCell(r.PrincipalPortion),
			models.MoneyCell(r.InterestPortion),
			models.MoneyCell(r.FeesPortion),
			models.MoneyCell(r.PenaltiesPortion),
			models.MoneyCell(r.PrincipalOutstanding),
		})
	}
	return t
}
