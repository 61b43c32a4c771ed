package exporter

import (
	"github.com/shopspring/decimal"

	"loanexport/internal/models"
)

// BuildLoanMetadata snapshots the header fields shown at the top of
// every export.
func BuildLoanMetadata(loan *models.Loan) models.LoanMetadata {
	return models.LoanMetadata{
		LoanID:           loan.ID,
		AccountNo:        loan.AccountNo,
		ClientName:       loan.ClientName,
		ProductName:      loan.ProductName,
		StatusLabel:      loan.Status.Value,
		CurrencyCode:     loan.Currency.Code,
		CurrencySymbol:   loan.Currency.DisplaySymbol,
		DisbursementDate: loan.Timeline.ActualDisbursement.Display(),
		MaturityDate:     loan.Timeline.ExpectedMaturity.Display(),
	}
}

// ComputeDisbursementSummary derives what was actually paid out to the
// client. When the source system supplies its own net-disbursal amount
// that figure is authoritative; otherwise net = approved − upfront
// fees. A negative net is surfaced as-is: it signals bad input data and
// must not be clamped away.
func ComputeDisbursementSummary(loan *models.Loan, charges []models.Charge) models.DisbursementSummary {
	approved := decimal.Zero
	switch {
	case loan.ApprovedPrincipal != nil:
		approved = *loan.ApprovedPrincipal
	case loan.Principal != nil:
		approved = *loan.Principal
	}

	var items []models.UpfrontFeeItem
	total := decimal.Zero
	for _, c := range charges {
		if !IsUpfrontCharge(c) {
			continue
		}
		items = append(items, models.UpfrontFeeItem{Name: c.Name, Amount: c.Amount})
		total = total.Add(c.Amount)
	}

	net := approved.Sub(total)
	if loan.NetDisbursalAmount != nil {
		net = *loan.NetDisbursalAmount
	}

	return models.DisbursementSummary{
		ApprovedAmount:   approved,
		UpfrontFeeItems:  items,
		UpfrontFeesTotal: total,
		NetPaidToClient:  net,
		DisbursementDate: loan.Timeline.ActualDisbursement.ISO(),
	}
}
