package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"loanexport/internal/adapters/fetcher"
	"loanexport/internal/config"
	"loanexport/internal/config/connections/mongo"
	"loanexport/internal/config/connections/postgres"
	"loanexport/internal/config/connections/s3"
	"loanexport/internal/services/exporter"
	"loanexport/internal/services/exporter/render"
)

type Handlers struct {
	Postgres *postgres.Postgres
	Mongo    *mongo.Mongo
	S3       *s3.S3

	Exporter *exporter.Service

	Logger *log.Logger
}

func New(pg *postgres.Postgres, mg *mongo.Mongo, s3c *s3.S3, api config.BankingAPI) *Handlers {
	f := fetcher.NewHTTPFetcher(&http.Client{}, fetcher.Options{
		BaseURL:  api.BaseURL,
		Token:    api.Token,
		TenantID: api.TenantID,
	})

	return &Handlers{
		Postgres: pg,
		Mongo:    mg,
		S3:       s3c,
		Exporter: exporter.NewService(f, render.DefaultRegistry()),
		Logger:   log.Default(),
	}
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
