package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"loanexport/internal/models"
)

// Options carries the core-banking API connection settings.
type Options struct {
	BaseURL  string
	Token    string
	TenantID string
}

// HTTPFetcher pulls the full loan aggregate (charges, schedule,
// transactions) from the core-banking REST API.
type HTTPFetcher struct {
	Client *http.Client
	Opts   Options
}

func NewHTTPFetcher(cli *http.Client, opts Options) *HTTPFetcher {
	if cli == nil {
		cli = &http.Client{}
	}
	return &HTTPFetcher{Client: cli, Opts: opts}
}

func (f *HTTPFetcher) FetchLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	u := fmt.Sprintf("%s/loans/%s?associations=all&exclude=guarantors", f.Opts.BaseURL, url.PathEscape(loanID))
	log.Printf("[FETCH][START] loan=%q", loanID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("[FETCH][ERR] build request: %v", err)
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.Opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.Opts.Token)
	}
	if f.Opts.TenantID != "" {
		req.Header.Set("Fineract-Platform-TenantId", f.Opts.TenantID)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		log.Printf("[FETCH][ERR] do request: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[FETCH][ERR] status=%d loan=%q", resp.StatusCode, loanID)
		return nil, fmt.Errorf("banking api status %d for loan %s", resp.StatusCode, loanID)
	}

	var loan models.Loan
	if err := json.NewDecoder(resp.Body).Decode(&loan); err != nil {
		log.Printf("[FETCH][ERR] decode: %v", err)
		return nil, fmt.Errorf("decode loan %s: %w", loanID, err)
	}

	log.Printf("[FETCH][OK] loan=%q account=%q charges=%d txns=%d", loanID, loan.AccountNo, len(loan.Charges), len(loan.Transactions))
	return &loan, nil
}
