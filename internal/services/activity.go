package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/models"
)

const activityLimit = 10

type ActivityItem struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// RecentActivity merges the newest records across the registration
// collections and returns the activityLimit most recent overall. Each
// per-collection query is already capped and sorted, so this is a small
// in-memory merge, not a table scan.
func RecentActivity(gdb *gorm.DB) ([]ActivityItem, error) {
	items := make([]ActivityItem, 0, 4*activityLimit)

	var vendors []models.Vendor
	if err := gdb.Order("created_at DESC").Limit(activityLimit).Find(&vendors).Error; err != nil {
		return nil, err
	}
	for _, v := range vendors {
		items = append(items, ActivityItem{"vendor", "Vendor: " + v.BusinessName, v.CreatedAt})
	}

	var foodVendors []models.FoodVendor
	if err := gdb.Order("created_at DESC").Limit(activityLimit).Find(&foodVendors).Error; err != nil {
		return nil, err
	}
	for _, v := range foodVendors {
		items = append(items, ActivityItem{"food-vendor", "Food Vendor: " + v.BusinessName, v.CreatedAt})
	}

	var teams []models.Team
	if err := gdb.Order("created_at DESC").Limit(activityLimit).Find(&teams).Error; err != nil {
		return nil, err
	}
	for _, t := range teams {
		items = append(items, ActivityItem{"team", "Team: " + t.TeamName, t.CreatedAt})
	}

	var sponsors []models.Sponsor
	if err := gdb.Order("created_at DESC").Limit(activityLimit).Find(&sponsors).Error; err != nil {
		return nil, err
	}
	for _, s := range sponsors {
		items = append(items, ActivityItem{"sponsor", "Sponsor: " + s.CompanyName, s.CreatedAt})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > activityLimit {
		items = items[:activityLimit]
	}
	return items, nil
}
