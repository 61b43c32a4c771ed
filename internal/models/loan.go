package models

import "github.com/shopspring/decimal"

// Loan is the aggregate returned by the core-banking API for a single
// loan account, with every association the export pipeline consumes.
// Optional monetary fields are pointers so "the source omitted it" stays
// distinguishable from an explicit zero.
type Loan struct {
	ID        int64  `json:"id"`
	AccountNo string `json:"accountNo"`

	ClientName  string `json:"clientName"`
	ProductName string `json:"loanProductName"`

	Status   LoanStatus `json:"status"`
	Currency Currency   `json:"currency"`

	Principal          *decimal.Decimal `json:"principal,omitempty"`
	ApprovedPrincipal  *decimal.Decimal `json:"approvedPrincipal,omitempty"`
	NetDisbursalAmount *decimal.Decimal `json:"netDisbursalAmount,omitempty"`

	Timeline Timeline `json:"timeline"`

	Charges           []Charge      `json:"charges,omitempty"`
	RepaymentSchedule *Schedule     `json:"repaymentSchedule,omitempty"`
	Transactions      []Transaction `json:"transactions,omitempty"`
}

type LoanStatus struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

type Currency struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	DisplaySymbol string `json:"displaySymbol"`
}

type Timeline struct {
	SubmittedOnDate    FlexDate `json:"submittedOnDate"`
	ApprovedOnDate     FlexDate `json:"approvedOnDate"`
	ActualDisbursement FlexDate `json:"actualDisbursementDate"`
	ExpectedMaturity   FlexDate `json:"expectedMaturityDate"`
}

// Charge is a fee or penalty attached to the loan. The linkage flags
// and the time type drive upfront-vs-scheduled classification; the
// record itself is never mutated.
type Charge struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`

	ChargeTimeType EnumOption `json:"chargeTimeType"`

	DeductedFromDisbursement bool `json:"amountDeductedFromDisbursement,omitempty"`
	PaidAtDisbursement       bool `json:"paidAtDisbursement,omitempty"`
}

type EnumOption struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

type Schedule struct {
	Periods []RepaymentPeriod `json:"periods"`
}

// RepaymentPeriod is one amortization-schedule entry. Period 0 is the
// disbursement pseudo-period and carries no due amounts.
type RepaymentPeriod struct {
	Period  int      `json:"period"`
	DueDate FlexDate `json:"dueDate"`

	PrincipalDue decimal.Decimal `json:"principalDue"`
	InterestDue  decimal.Decimal `json:"interestDue"`
	FeesDue      decimal.Decimal `json:"feeChargesDue"`
	PenaltiesDue decimal.Decimal `json:"penaltyChargesDue"`
	TotalDue     decimal.Decimal `json:"totalDueForPeriod"`

	PrincipalOutstanding decimal.Decimal `json:"principalLoanBalanceOutstanding"`
}

// Transaction is one ledger entry on the loan account.
type Transaction struct {
	ID   int64           `json:"id"`
	Type TransactionType `json:"type"`
	Date FlexDate        `json:"date"`

	Amount           *decimal.Decimal `json:"amount,omitempty"`
	PrincipalPortion decimal.Decimal  `json:"principalPortion"`
	InterestPortion  decimal.Decimal  `json:"interestPortion"`
	FeesPortion      decimal.Decimal  `json:"feeChargesPortion"`
	PenaltiesPortion decimal.Decimal  `json:"penaltyChargesPortion"`

	OutstandingBalance *decimal.Decimal `json:"outstandingLoanBalance,omitempty"`

	ManuallyReversed bool `json:"manuallyReversed,omitempty"`
}

type TransactionType struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Value string `json:"value"`
}
