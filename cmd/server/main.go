package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/db"
	"github.com/bazaarhq/backoffice/internal/web"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := db.Init(cfg.DBPath); err != nil {
		log.Fatalf("db init: %v", err)
	}

	r := web.Router(cfg)

	log.Printf("backoffice listening on %s (sponsor tiers: %s, vendor pricing: %s)",
		cfg.Addr, cfg.SponsorTiers, cfg.VendorPricing)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
