package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// Deployment variants. The event has shipped with two sponsor tier sets
// and two vendor pricing models over the years; one of each is selected
// at startup, never both at once.
const (
	SponsorTiersClassic = "classic" // diamond / platinum / gold / silver
	SponsorTiersTitle   = "title"   // title / platinum / gold / supporter

	VendorPricingBooths   = "booths"   // per-booth selection, quantity-tiered table
	VendorPricingLocation = "location" // single location, flat price table
)

type Config struct {
	Addr   string
	DBPath string

	// Admin auth. If AdminPasswordHash is set it wins; AdminPassword is
	// the plain-compare fallback for local development.
	AdminPassword     string
	AdminPasswordHash string
	SessionKey        []byte // hex-decoded ADMIN_SESSION_KEY, nil if unset
	CookieSecure      bool   // session cookie Secure attribute; off for plain-http dev

	SponsorTiers     string
	VendorPricing    string
	RatingsMandatory bool // public feedback form requires all 12 ratings
}

func FromEnv() (Config, error) {
	var c Config

	c.Addr = strings.TrimSpace(os.Getenv("ADDR"))
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	c.DBPath = strings.TrimSpace(os.Getenv("DB_PATH"))
	if c.DBPath == "" {
		c.DBPath = "backoffice.db"
	}

	c.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	c.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return c, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	if raw := strings.TrimSpace(os.Getenv("ADMIN_SESSION_KEY")); raw != "" {
		key, err := hex.DecodeString(raw)
		if err != nil {
			return c, fmt.Errorf("ADMIN_SESSION_KEY is not valid hex: %w", err)
		}
		if len(key) != 32 && len(key) != 64 {
			return c, fmt.Errorf("ADMIN_SESSION_KEY must be 32 or 64 bytes, got %d", len(key))
		}
		c.SessionKey = key
	}

	c.SponsorTiers = strings.TrimSpace(os.Getenv("SPONSOR_TIERS"))
	if c.SponsorTiers == "" {
		c.SponsorTiers = SponsorTiersClassic
	}
	if c.SponsorTiers != SponsorTiersClassic && c.SponsorTiers != SponsorTiersTitle {
		return c, fmt.Errorf("SPONSOR_TIERS must be %q or %q", SponsorTiersClassic, SponsorTiersTitle)
	}

	c.VendorPricing = strings.TrimSpace(os.Getenv("VENDOR_PRICING"))
	if c.VendorPricing == "" {
		c.VendorPricing = VendorPricingBooths
	}
	if c.VendorPricing != VendorPricingBooths && c.VendorPricing != VendorPricingLocation {
		return c, fmt.Errorf("VENDOR_PRICING must be %q or %q", VendorPricingBooths, VendorPricingLocation)
	}

	c.CookieSecure = parseBool(os.Getenv("COOKIE_SECURE"))
	c.RatingsMandatory = parseBool(os.Getenv("RATINGS_MANDATORY"))

	return c, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
