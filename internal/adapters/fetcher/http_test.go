package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

const loanJSON = `{
  "id": 42,
  "accountNo": "000000042",
  "clientName": "Jane Doe",
  "loanProductName": "SME Working Capital",
  "status": {"id": 300, "code": "loanStatusType.active", "value": "Active"},
  "currency": {"code": "KES", "displaySymbol": "KSh"},
  "approvedPrincipal": 100000,
  "timeline": {
    "actualDisbursementDate": [2024, 1, 15],
    "expectedMaturityDate": "2025-01-15"
  },
  "charges": [
    {"id": 1, "name": "Processing Fee", "amount": 2000, "chargeTimeType": {"id": 1, "code": "chargeTimeType.disbursement", "value": "Disbursement"}}
  ],
  "repaymentSchedule": {"periods": [{"period": 0}, {"period": 1, "dueDate": [2024, 2, 15], "totalDueForPeriod": 9200}]},
  "transactions": [
    {"id": 10, "type": {"code": "loanTransactionType.disbursement", "value": "Disbursement"}, "date": [2024, 1, 15], "amount": 100000}
  ]
}`

func TestFetchLoan(t *testing.T) {
	var gotPath, gotTenant, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTenant = r.Header.Get("Fineract-Platform-TenantId")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(loanJSON))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), Options{BaseURL: srv.URL, Token: "secret", TenantID: "default"})
	loan, err := f.FetchLoan(context.Background(), "42")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotPath != "/loans/42" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotTenant != "default" || gotAuth != "Bearer secret" {
		t.Fatalf("headers wrong: tenant=%q auth=%q", gotTenant, gotAuth)
	}

	if loan.ID != 42 || loan.AccountNo != "000000042" {
		t.Fatalf("identity wrong: %+v", loan)
	}
	if loan.ApprovedPrincipal == nil || !loan.ApprovedPrincipal.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("approved principal not decoded: %+v", loan.ApprovedPrincipal)
	}
	if got := loan.Timeline.ActualDisbursement.ISO(); got != "2024-01-15" {
		t.Fatalf("triple date not normalized: %q", got)
	}
	if got := loan.Timeline.ExpectedMaturity.ISO(); got != "2025-01-15" {
		t.Fatalf("string date not normalized: %q", got)
	}
	if len(loan.Charges) != 1 || len(loan.Transactions) != 1 {
		t.Fatalf("associations missing: charges=%d txns=%d", len(loan.Charges), len(loan.Transactions))
	}
}

func TestFetchLoan_non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), Options{BaseURL: srv.URL})
	if _, err := f.FetchLoan(context.Background(), "999"); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestFetchLoan_badJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), Options{BaseURL: srv.URL})
	if _, err := f.FetchLoan(context.Background(), "42"); err == nil {
		t.Fatal("expected decode error")
	}
}
