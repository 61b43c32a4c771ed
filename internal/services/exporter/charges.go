package exporter

import (
	"strings"

	"loanexport/internal/models"
)

// Charge-time-type labels/codes that mean the fee is collected at
// disbursement rather than through the schedule.
var upfrontTimeTypes = []string{
	"disbursement",
	"tranche disbursement",
	"specified due date",
}

// Known upfront-fee vocabulary, matched against the charge display
// name when the source gives us neither a linkage flag nor a usable
// time type. Best effort: source systems name these inconsistently and
// the occasional misclassification is accepted.
var upfrontNameTerms = []string{
	"processing fee",
	"disbursement fee",
	"application fee",
	"origination fee",
	"stamp duty",
	"duty",
	"revenue share",
	"guarantee pool",
	"onboarding",
	"administrative fee",
	"admin fee",
	"admin",
}

// IsUpfrontCharge reports whether a charge is deducted from the
// disbursed amount. Priority: explicit source flags, then the
// charge-timing taxonomy, then the name vocabulary; first match wins.
func IsUpfrontCharge(c models.Charge) bool {
	if c.DeductedFromDisbursement || c.PaidAtDisbursement {
		return true
	}

	timing := strings.ToLower(c.ChargeTimeType.Value + " " + c.ChargeTimeType.Code)
	for _, t := range upfrontTimeTypes {
		if strings.Contains(timing, t) {
			return true
		}
	}

	name := strings.ToLower(c.Name)
	for _, t := range upfrontNameTerms {
		if strings.Contains(name, t) {
			return true
		}
	}

	return false
}
