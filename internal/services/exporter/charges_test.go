package exporter

import (
	"testing"

	"github.com/shopspring/decimal"

	"loanexport/internal/models"
)

func TestIsUpfrontCharge(t *testing.T) {
	cases := []struct {
		name   string
		charge models.Charge
		want   bool
	}{
		{
			name:   "explicit deducted flag",
			charge: models.Charge{Name: "Whatever Fee", DeductedFromDisbursement: true},
			want:   true,
		},
		{
			name:   "explicit paid-at-disbursement flag",
			charge: models.Charge{Name: "Whatever Fee", PaidAtDisbursement: true},
			want:   true,
		},
		{
			name: "disbursement time type",
			charge: models.Charge{
				Name:           "Mystery Charge",
				ChargeTimeType: models.EnumOption{Value: "Disbursement"},
			},
			want: true,
		},
		{
			name: "tranche disbursement time type code",
			charge: models.Charge{
				Name:           "Mystery Charge",
				ChargeTimeType: models.EnumOption{Code: "chargeTimeType.tranchedisbursement", Value: "Tranche Disbursement"},
			},
			want: true,
		},
		{
			name: "specified due date time type",
			charge: models.Charge{
				Name:           "Mystery Charge",
				ChargeTimeType: models.EnumOption{Value: "Specified due date"},
			},
			want: true,
		},
		{
			name:   "processing fee by name",
			charge: models.Charge{Name: "Loan Processing Fee", ChargeTimeType: models.EnumOption{Value: "Monthly Fee"}},
			want:   true,
		},
		{
			name:   "stamp duty by name",
			charge: models.Charge{Name: "Stamp Duty"},
			want:   true,
		},
		{
			name:   "origination fee by name, mixed case",
			charge: models.Charge{Name: "ORIGINATION FEE"},
			want:   true,
		},
		{
			name: "late payment penalty stays scheduled",
			charge: models.Charge{
				Name:           "Late Payment Penalty",
				ChargeTimeType: models.EnumOption{Value: "Overdue Installment"},
			},
			want: false,
		},
		{
			name:   "unknown charge with no signals",
			charge: models.Charge{Name: "Insurance Premium"},
			want:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUpfrontCharge(tc.charge); got != tc.want {
				t.Fatalf("IsUpfrontCharge(%q) = %v, want %v", tc.charge.Name, got, tc.want)
			}
		})
	}
}

// Explicit flags outrank a non-upfront time type, and the time type
// outranks a name that matches nothing.
func TestIsUpfrontCharge_priority(t *testing.T) {
	c := models.Charge{
		Name:                     "Insurance Premium",
		Amount:                   decimal.NewFromInt(100),
		ChargeTimeType:           models.EnumOption{Value: "Overdue Installment"},
		DeductedFromDisbursement: true,
	}
	if !IsUpfrontCharge(c) {
		t.Fatal("explicit flag must win over non-upfront time type and name")
	}

	c = models.Charge{
		Name:           "Insurance Premium",
		ChargeTimeType: models.EnumOption{Value: "Disbursement"},
	}
	if !IsUpfrontCharge(c) {
		t.Fatal("time type must win over a non-matching name")
	}
}

func TestIsUpfrontCharge_deterministic(t *testing.T) {
	c := models.Charge{Name: "Processing Fee", ChargeTimeType: models.EnumOption{Value: "disbursement"}}
	first := IsUpfrontCharge(c)
	for i := 0; i < 50; i++ {
		if IsUpfrontCharge(c) != first {
			t.Fatal("classifier must be deterministic for a fixed charge")
		}
	}
}
