package handlers

import (
	"net/http"
	"strconv"

	exportitems "loanexport/internal/repository/exports"

	"go.mongodb.org/mongo-driver/bson"
)

// ListExports returns past export runs, newest first. Filterable by
// loan via ?loan_id=, pageable via ?limit= and ?skip=.
func (h *Handlers) ListExports(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if loanID := r.URL.Query().Get("loan_id"); loanID != "" {
		filter["loan_id"] = loanID
	}

	limit := int64(50)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	var skip int64
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			skip = n
		}
	}

	recs, total, err := exportitems.ListExportRecords(r.Context(), h.Mongo, filter, limit, skip)
	if err != nil {
		h.Logger.Printf("[RECORDS][ERR] list: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.JSON(w, http.StatusOK, map[string]any{
		"total":   total,
		"records": recs,
	})
}

// GetExport returns a single export record by id.
func (h *Handlers) GetExport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}

	rec, err := exportitems.FindExportRecordByID(r.Context(), h.Mongo, id)
	if err != nil {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	h.JSON(w, http.StatusOK, rec)
}
