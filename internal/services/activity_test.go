package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/bazaarhq/backoffice/internal/models"
)

func TestRecentActivityMergeOrder(t *testing.T) {
	gdb := openTestDB(t)

	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	team := models.Team{TeamID: "TM-A-00001", TeamName: "Falcons", Category: "boys_elem_1_3"}
	team.CreatedAt = base.Add(2 * time.Hour)
	if err := gdb.Create(&team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	sponsor := models.Sponsor{SponsorID: "SPR-A-00002", CompanyName: "Acme", Tier: "gold", Amount: 2500}
	sponsor.CreatedAt = base.Add(3 * time.Hour)
	if err := gdb.Create(&sponsor).Error; err != nil {
		t.Fatalf("seed sponsor: %v", err)
	}
	vendor := models.Vendor{VendorID: "VND-A-00003", BusinessName: "Crafts Co"}
	vendor.CreatedAt = base.Add(1 * time.Hour)
	if err := gdb.Create(&vendor).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}

	items, err := RecentActivity(gdb)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	wantTypes := []string{"sponsor", "team", "vendor"}
	for i, w := range wantTypes {
		if items[i].Type != w {
			t.Errorf("items[%d].Type = %q, want %q", i, items[i].Type, w)
		}
	}
	if items[0].Title != "Sponsor: Acme" {
		t.Errorf("title = %q", items[0].Title)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Errorf("items out of order at %d", i)
		}
	}
}

func TestRecentActivityTruncated(t *testing.T) {
	gdb := openTestDB(t)

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		tm := models.Team{
			TeamID:   fmt.Sprintf("TM-X-%05d", i),
			TeamName: fmt.Sprintf("Team %d", i),
			Category: "boys_elem_1_3",
		}
		tm.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := gdb.Create(&tm).Error; err != nil {
			t.Fatalf("seed team %d: %v", i, err)
		}
	}
	for i := 0; i < 4; i++ {
		s := models.Sponsor{
			SponsorID:   fmt.Sprintf("SPR-X-%05d", i),
			CompanyName: fmt.Sprintf("Sponsor %d", i),
			Tier:        "silver",
			Amount:      1000,
		}
		s.CreatedAt = base.Add(time.Duration(100+i) * time.Minute)
		if err := gdb.Create(&s).Error; err != nil {
			t.Fatalf("seed sponsor %d: %v", i, err)
		}
	}

	items, err := RecentActivity(gdb)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("len = %d, want 10", len(items))
	}
	// All four sponsors are newer than every team.
	for i := 0; i < 4; i++ {
		if items[i].Type != "sponsor" {
			t.Errorf("items[%d].Type = %q, want sponsor", i, items[i].Type)
		}
	}
	for i := 4; i < 10; i++ {
		if items[i].Type != "team" {
			t.Errorf("items[%d].Type = %q, want team", i, items[i].Type)
		}
	}
}
