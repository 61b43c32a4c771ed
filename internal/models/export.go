package models

import "github.com/shopspring/decimal"

// LoanMetadata is the header snapshot rendered at the top of every
// export. Derived once per request, immutable afterwards.
type LoanMetadata struct {
	LoanID         int64
	AccountNo      string
	ClientName     string
	ProductName    string
	StatusLabel    string
	CurrencyCode   string
	CurrencySymbol string

	DisbursementDate string
	MaturityDate     string
}

type UpfrontFeeItem struct {
	Name   string
	Amount decimal.Decimal
}

// DisbursementSummary describes what the client actually received at
// disbursement. UpfrontFeesTotal always equals the sum of the items.
// NetPaidToClient carries the source system's own net-disbursal figure
// when one was supplied; the two representations may legitimately
// diverge and are never reconciled.
type DisbursementSummary struct {
	ApprovedAmount   decimal.Decimal
	UpfrontFeeItems  []UpfrontFeeItem
	UpfrontFeesTotal decimal.Decimal
	NetPaidToClient  decimal.Decimal
	DisbursementDate string
}

// ScheduleRow is one repayment installment, in source order.
type ScheduleRow struct {
	Installment int
	DueDate     string

	PrincipalDue decimal.Decimal
	InterestDue  decimal.Decimal
	FeesDue      decimal.Decimal
	PenaltiesDue decimal.Decimal
	TotalDue     decimal.Decimal

	PrincipalOutstanding decimal.Decimal
}

// StatementRow is one non-reversed transaction in chronological order.
type StatementRow struct {
	Date      string
	TypeLabel string

	Amount           decimal.Decimal
	PrincipalPortion decimal.Decimal
	InterestPortion  decimal.Decimal
	FeesPortion      decimal.Decimal
	PenaltiesPortion decimal.Decimal

	PrincipalOutstanding decimal.Decimal
}

// CellKind discriminates table cells so each renderer can pick its own
// representation for money (fixed two decimals in text, numeric cells
// with a number format in the spreadsheet).
type CellKind int

const (
	CellText CellKind = iota
	CellMoney
)

type Cell struct {
	Kind   CellKind
	Text   string
	Amount decimal.Decimal
}

func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

func MoneyCell(d decimal.Decimal) Cell { return Cell{Kind: CellMoney, Amount: d} }

// Table is the render-ready form of the projected rows. Totals is nil
// for statement exports; for schedule exports it holds the TOTAL footer
// row, computed once so every format agrees.
type Table struct {
	Columns []string
	Rows    [][]Cell
	Totals  []Cell
}

// ExportDocument is the single input every renderer consumes.
type ExportDocument struct {
	Title   string
	Meta    LoanMetadata
	Summary DisbursementSummary
	Table   Table
}
