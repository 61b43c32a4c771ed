package exporter

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"loanexport/internal/models"
	"loanexport/internal/ports"
	"loanexport/internal/services/exporter/render"
)

type Request struct {
	LoanID         string
	ExportType     ports.ExportType
	Format         ports.Format
	ExportRecordID string
}

type Result struct {
	Buffer      []byte
	ContentType string
	Filename    string

	ExportType ports.ExportType
	Format     ports.Format
	Rows       int
	SizeBytes  int64
}

// Service is the export orchestrator: the only component in the
// pipeline that touches I/O, and only through the fetcher port. Every
// step after the fetch is pure.
type Service struct {
	Fetcher   ports.LoanFetcher
	Renderers map[render.Key]ports.Renderer
}

func NewService(fetcher ports.LoanFetcher, renderers map[render.Key]ports.Renderer) *Service {
	if renderers == nil {
		renderers = render.DefaultRegistry()
	}
	return &Service{Fetcher: fetcher, Renderers: renderers}
}

func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	t0 := time.Now()
	ctx = context.WithValue(ctx, ports.CtxExportRecordID, req.ExportRecordID)
	log.Printf("[EXP][START] loan=%q type=%q format=%q export_record_id=%q", req.LoanID, req.ExportType, req.Format, req.ExportRecordID)

	loan, err := s.Fetcher.FetchLoan(ctx, req.LoanID)
	if err != nil {
		log.Printf("[EXP][ERR] fetch loan: %v", err)
		return Result{}, fmt.Errorf("fetch loan %s: %w", req.LoanID, err)
	}

	res, err := s.GenerateFromLoan(loan, req.ExportType, req.Format)
	if err != nil {
		log.Printf("[EXP][ERR] render: %v", err)
		return Result{}, err
	}

	log.Printf("[EXP][DONE] loan=%q type=%q format=%q rows=%d size=%d duration=%s",
		req.LoanID, req.ExportType, req.Format, res.Rows, res.SizeBytes, time.Since(t0))
	return res, nil
}

// GenerateFromLoan runs the deterministic part of the pipeline over an
// already-fetched aggregate: classify, summarize, project, render.
func (s *Service) GenerateFromLoan(loan *models.Loan, exportType ports.ExportType, format ports.Format) (Result, error) {
	renderer, ok := s.Renderers[render.Key{Type: exportType, Format: format}]
	if !ok {
		return Result{}, fmt.Errorf("no renderer for type=%q format=%q", exportType, format)
	}

	meta := BuildLoanMetadata(loan)
	summary := ComputeDisbursementSummary(loan, loan.Charges)

	doc := models.ExportDocument{Meta: meta, Summary: summary}

	var rows int
	switch exportType {
	case ports.ExportSchedule:
		var periods []models.RepaymentPeriod
		if loan.RepaymentSchedule != nil {
			periods = loan.RepaymentSchedule.Periods
		}
		scheduleRows := BuildScheduleRows(periods)
		doc.Title = "Loan Repayment Schedule"
		doc.Table = BuildScheduleTable(scheduleRows)
		rows = len(scheduleRows)
	case ports.ExportStatement:
		statementRows := BuildStatementRows(loan.Transactions, summary.ApprovedAmount)
		doc.Title = "Loan Account Statement"
		doc.Table = BuildStatementTable(statementRows)
		rows = len(statementRows)
	default:
		return Result{}, fmt.Errorf("unknown export type %q", exportType)
	}

	buf, err := renderer.Render(doc)
	if err != nil {
		return Result{}, fmt.Errorf("render %s/%s: %w", exportType, format, err)
	}

	return Result{
		Buffer:      buf,
		ContentType: renderer.ContentType(),
		Filename:    exportFilename(loan, exportType, renderer.Extension()),
		ExportType:  exportType,
		Format:      format,
		Rows:        rows,
		SizeBytes:   int64(len(buf)),
	}, nil
}

func exportFilename(loan *models.Loan, exportType ports.ExportType, ext string) string {
	ref := loan.AccountNo
	if ref == "" {
		ref = strconv.FormatInt(loan.ID, 10)
	}
	return fmt.Sprintf("loan-%s-%s.%s", ref, exportType, ext)
}
