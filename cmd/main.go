package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loanexport/internal/config"
	"loanexport/internal/handlers"
	"loanexport/internal/repository"
	"loanexport/internal/server"
	"loanexport/internal/transport/auth"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("connection check failed: %v", err)
	}
	fmt.Println("all connections OK")

	h := handlers.New(cfg.Postgres, cfg.Mongo, cfg.S3, cfg.BankingAPI)

	tokenRepo := repository.NewPersonalAccessTokenRepository(cfg.Postgres)
	authMW := auth.SanctumMiddleware(tokenRepo)

	srv := server.NewServer(cfg.Port, h, authMW)

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}
