package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	exportitems "loanexport/internal/repository/exports"
	"loanexport/internal/ports"
	"loanexport/internal/services/exporter"
	auth "loanexport/internal/transport/auth"

	"github.com/google/uuid"
)

type exportRequest struct {
	LoanID     string `json:"loan_id"`
	ExportType string `json:"export_type"`
	Format     string `json:"format"`
	Archive    bool   `json:"archive,omitempty"`
	TimeoutSec int    `json:"timeout_seconds,omitempty"`
}

// Export renders a loan export synchronously and streams the file back.
// When archive is requested the buffer is also stored in the exports
// bucket; every run gets an export_records document either way.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use POST"})
		return
	}

	var req exportRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[EXPORT][REQ][ERR] bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.LoanID) == "" {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "loan_id is required"})
		return
	}

	exportType := ports.ExportType(req.ExportType)
	if exportType != ports.ExportSchedule && exportType != ports.ExportStatement {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "export_type must be schedule or statement"})
		return
	}
	format := ports.Format(req.Format)
	if format != ports.FormatCSV && format != ports.FormatXLSX && format != ports.FormatPDF {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "format must be csv, xlsx or pdf"})
		return
	}

	timeout := 60 * time.Second
	if req.TimeoutSec > 0 {
		timeout = time.Duration(req.TimeoutSec) * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	recID := uuid.NewString()
	start := time.Now()

	res, err := h.Exporter.Generate(ctx, exporter.Request{
		LoanID:         req.LoanID,
		ExportType:     exportType,
		Format:         format,
		ExportRecordID: recID,
	})

	rec := exportitems.Record{
		LoanID:     req.LoanID,
		ExportType: string(exportType),
		Format:     string(format),
		DurationMS: time.Since(start).Milliseconds(),
	}
	if userID, errGet := auth.GetUserID(r.Context()); errGet == nil {
		rec.UserID = &userID
	}

	if err != nil {
		h.Logger.Printf("[EXPORT][ERR] loan=%q type=%q format=%q err=%v took=%s",
			req.LoanID, exportType, format, err, time.Since(start))
		rec.Status = "failed"
		msg := err.Error()
		rec.Errors = &msg
		if _, insErr := exportitems.InsertExportRecord(r.Context(), h.Mongo, rec); insErr != nil {
			h.Logger.Printf("[EXPORT][ERR] record insert: %v", insErr)
		}
		h.JSON(w, http.StatusBadGateway, map[string]string{"error": msg})
		return
	}

	rec.Status = "generated"
	rec.Rows = res.Rows
	rec.Filename = res.Filename
	rec.SizeBytes = &res.SizeBytes

	if req.Archive {
		key := fmt.Sprintf("exports/%s-%s", recID, res.Filename)
		if _, putErr := h.S3.StoreObject(ctx, key, res.Buffer, res.ContentType); putErr != nil {
			h.Logger.Printf("[EXPORT][ERR] s3 put: %v", putErr)
		} else {
			rec.Bucket = &h.S3.Bucket
			rec.Key = &key
			rec.Status = "archived"
		}
	}

	if _, insErr := exportitems.InsertExportRecord(r.Context(), h.Mongo, rec); insErr != nil {
		h.Logger.Printf("[EXPORT][ERR] record insert: %v", insErr)
	}

	h.Logger.Printf("[EXPORT][OK] loan=%q type=%q format=%q rows=%d size=%d took=%s",
		req.LoanID, exportType, format, res.Rows, res.SizeBytes, time.Since(start))

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Buffer)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Buffer)
}
