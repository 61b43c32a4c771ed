package exporter

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"loanexport/internal/models"
)

// BuildScheduleRows flattens repayment-schedule periods into display
// rows. Period 0 (and anything without a positive period number) is
// the disbursement pseudo-period and is skipped; everything else is
// copied verbatim in source order.
func BuildScheduleRows(periods []models.RepaymentPeriod) []models.ScheduleRow {
	rows := make([]models.ScheduleRow, 0, len(periods))
	for _, p := range periods {
		if p.Period <= 0 {
			continue
		}
		rows = append(rows, models.ScheduleRow{
			Installment:          p.Period,
			DueDate:              p.DueDate.Display(),
			PrincipalDue:         p.PrincipalDue,
			InterestDue:          p.InterestDue,
			FeesDue:              p.FeesDue,
			PenaltiesDue:         p.PenaltiesDue,
			TotalDue:             p.TotalDue,
			PrincipalOutstanding: p.PrincipalOutstanding,
		})
	}
	return rows
}

// BuildStatementRows turns the transaction ledger into chronological
// statement rows, replaying the stream to reconstruct a running
// principal-outstanding balance. Manually reversed transactions are
// dropped before the replay so they cannot touch the balance. The
// per-row outstanding figure prefers the source system's own number
// when it reported one; the local replay is only a fallback.
func BuildStatementRows(txns []models.Transaction, approvedPrincipal decimal.Decimal) []models.StatementRow {
	live := make([]models.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.ManuallyReversed {
			continue
		}
		live = append(live, tx)
	}

	// Stable: same-day entries keep their source order.
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Date.Display() < live[j].Date.Display()
	})

	running := decimal.Zero
	rows := make([]models.StatementRow, 0, len(live))
	for _, tx := range live {
		code := strings.ToLower(tx.Type.Code)

		switch {
		case strings.Contains(code, "disbursement") && !strings.Contains(code, "repayment"):
			if tx.Amount != nil {
				running = *tx.Amount
			} else {
				running = approvedPrincipal
			}
		case strings.Contains(code, "repayment") || strings.Contains(code, "writeoff"):
			running = running.Sub(tx.PrincipalPortion)
			if running.IsNegative() {
				running = decimal.Zero
			}
		}

		outstanding := running
		if tx.OutstandingBalance != nil {
			outstanding = *tx.OutstandingBalance
		}

		amount := decimal.Zero
		if tx.Amount != nil {
			amount = *tx.Amount
		}

		rows = append(rows, models.StatementRow{
			Date:                 tx.Date.Display(),
			TypeLabel:            transactionLabel(tx.Type),
			Amount:               amount,
			PrincipalPortion:     tx.PrincipalPortion,
			InterestPortion:      tx.InterestPortion,
			FeesPortion:          tx.FeesPortion,
			PenaltiesPortion:     tx.PenaltiesPortion,
			PrincipalOutstanding: outstanding,
		})
	}
	return rows
}

// transactionLabel maps raw type codes onto the small fixed label set
// the console shows, falling back to whatever the source called it.
func transactionLabel(t models.TransactionType) string {
	code := strings.ToLower(t.Code)

	switch {
	case strings.Contains(code, "disbursement") && strings.Contains(code, "repayment"):
		return "Fee Deduction (Net-off)"
	case strings.Contains(code, "disbursement"):
		return "Disbursement"
	case strings.Contains(code, "writeoff"):
		return "Write Off"
	case strings.Contains(code, "repayment"):
		return "Repayment"
	case strings.Contains(code, "waive"):
		return "Waiver"
	case strings.Contains(code, "accrual"):
		return "Accrual"
	case strings.Contains(code, "charge"):
		return "Charge"
	}

	if t.Value != "" {
		return t.Value
	}
	return t.Code
}
