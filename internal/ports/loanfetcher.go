package ports

import (
	"context"

	"loanexport/internal/models"
)

// LoanFetcher hands the pipeline a fully-populated loan aggregate.
// Fetching (and any retry policy) lives behind this boundary; the
// export pipeline itself performs no network I/O.
type LoanFetcher interface {
	FetchLoan(ctx context.Context, loanID string) (*models.Loan, error)
}
