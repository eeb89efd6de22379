package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bazaarhq/backoffice/internal/models"
)

// Count-and-revenue aggregates run as one SUM(CASE) query per table so
// a dashboard load is a handful of round-trips, not dozens of COUNTs.
// Every SUM is wrapped in COALESCE so an empty table scans as zero.

type VendorStats struct {
	Total           int64   `json:"total"`
	Active          int64   `json:"active"`
	PendingPayments int64   `json:"pendingPayments"`
	Revenue         float64 `json:"revenue"`
}

func VendorStatistics(gdb *gorm.DB) (VendorStats, error) {
	var s VendorStats
	err := gdb.Table("vendors").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0)                              AS active,
		COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0)             AS pending_payments,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN total_booth_price END), 0)  AS revenue`).
		Scan(&s).Error
	return s, err
}

type FoodVendorStats struct {
	Total           int64   `json:"total"`
	Active          int64   `json:"active"`
	PendingPayments int64   `json:"pendingPayments"`
	Revenue         float64 `json:"revenue"`
}

func FoodVendorStatistics(gdb *gorm.DB) (FoodVendorStats, error) {
	var s FoodVendorStats
	err := gdb.Table("food_vendors").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN 1 ELSE 0 END), 0)  AS active,
		COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0)    AS pending_payments,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN vendor_fee END), 0) AS revenue`).
		Scan(&s).Error
	return s, err
}

type TeamStats struct {
	Total           int64   `json:"total"`
	Approved        int64   `json:"approved"`
	PendingPayments int64   `json:"pendingPayments"`
	Revenue         float64 `json:"revenue"`
}

func TeamStatistics(gdb *gorm.DB) (TeamStats, error) {
	var s TeamStats
	err := gdb.Table("teams").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN registration_status = 'approved' THEN 1 ELSE 0 END), 0) AS approved,
		COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0)       AS pending_payments,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN registration_fee END), 0) AS revenue`).
		Scan(&s).Error
	return s, err
}

type SponsorStats struct {
	Total           int64   `json:"total"`
	Active          int64   `json:"active"`
	PendingPayments int64   `json:"pendingPayments"`
	Revenue         float64 `json:"revenue"`
}

func SponsorStatistics(gdb *gorm.DB) (SponsorStats, error) {
	var s SponsorStats
	err := gdb.Table("sponsors").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0)                  AS active,
		COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_payments,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN amount END), 0) AS revenue`).
		Scan(&s).Error
	return s, err
}

type PlayerStats struct {
	Total           int64   `json:"total"`
	Approved        int64   `json:"approved"`
	PendingPayments int64   `json:"pendingPayments"`
	Revenue         float64 `json:"revenue"`
	ShirtCount      int64   `json:"shirtCount"`
}

func PlayerStatistics(gdb *gorm.DB) (PlayerStats, error) {
	var s PlayerStats
	err := gdb.Table("players").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN registration_status = 'approved' THEN 1 ELSE 0 END), 0)  AS approved,
		COALESCE(SUM(CASE WHEN payment_status = 'pending' THEN 1 ELSE 0 END), 0)        AS pending_payments,
		COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN registration_fee END), 0) AS revenue,
		COALESCE(SUM(CASE WHEN registration_status = 'approved' AND shirt_size <> '' THEN 1 ELSE 0 END), 0) AS shirt_count`).
		Scan(&s).Error
	return s, err
}

// ShirtSummary counts shirt sizes across approved players, for the
// shirt order export.
func ShirtSummary(gdb *gorm.DB) (map[string]int64, error) {
	rows := []struct {
		ShirtSize string
		N         int64
	}{}
	err := gdb.Table("players").
		Select("shirt_size, COUNT(*) AS n").
		Where("registration_status = ? AND shirt_size <> ''", models.RegApproved).
		Group("shirt_size").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.ShirtSize] = r.N
	}
	return out, nil
}

type BounceHouseStats struct {
	Total         int64 `json:"total"`
	Active        int64 `json:"active"`
	TotalChildren int64 `json:"totalChildren"`
	MaleCount     int64 `json:"maleCount"`
	FemaleCount   int64 `json:"femaleCount"`
}

func BounceHouseStatistics(gdb *gorm.DB) (BounceHouseStats, error) {
	var s BounceHouseStats
	err := gdb.Table("bounce_house_registrations").Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active`).
		Scan(&s).Error
	if err != nil {
		return s, err
	}
	err = gdb.Table("bounce_children").Select(`
		COUNT(*) AS total_children,
		COALESCE(SUM(CASE WHEN gender = 'male' THEN 1 ELSE 0 END), 0)   AS male_count,
		COALESCE(SUM(CASE WHEN gender = 'female' THEN 1 ELSE 0 END), 0) AS female_count`).
		Scan(&s).Error
	return s, err
}

// ratingAccumulator folds sparse per-record rating sets into
// per-category sums and counts. A category's average divides by the
// number of records that answered it, not the total record count.
type ratingAccumulator struct {
	keys   []string
	sums   map[string]int
	counts map[string]int64
}

func newRatingAccumulator(keys []string) *ratingAccumulator {
	return &ratingAccumulator{
		keys:   keys,
		sums:   make(map[string]int, len(keys)),
		counts: make(map[string]int64, len(keys)),
	}
}

func (a *ratingAccumulator) add(byKey map[string]*int) {
	for _, k := range a.keys {
		if v := byKey[k]; v != nil {
			a.sums[k] += *v
			a.counts[k]++
		}
	}
}

func (a *ratingAccumulator) averages() map[string]string {
	out := make(map[string]string, len(a.keys))
	for _, k := range a.keys {
		out[k] = formatAvg(a.sums[k], a.counts[k])
	}
	return out
}

// overall averages every supplied rating across all categories.
func (a *ratingAccumulator) overall() string {
	var sum int
	var count int64
	for _, k := range a.keys {
		sum += a.sums[k]
		count += a.counts[k]
	}
	return formatAvg(sum, count)
}

// extremes returns the highest- and lowest-averaging categories among
// those that received any ratings. Empty strings when nothing was rated.
func (a *ratingAccumulator) extremes() (highest, lowest string) {
	var hi, lo float64
	for _, k := range a.keys {
		if a.counts[k] == 0 {
			continue
		}
		avg := float64(a.sums[k]) / float64(a.counts[k])
		if highest == "" || avg > hi {
			highest, hi = k, avg
		}
		if lowest == "" || avg < lo {
			lowest, lo = k, avg
		}
	}
	return highest, lowest
}

func formatAvg(sum int, count int64) string {
	if count == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(count))
}

type FeedbackStats struct {
	Total      int64             `json:"total"`
	Averages   map[string]string `json:"averages"`
	OverallAvg string            `json:"overallAvg"`
	Highest    string            `json:"highestCategory"`
	Lowest     string            `json:"lowestCategory"`
}

func FeedbackStatistics(gdb *gorm.DB) (FeedbackStats, error) {
	var list []models.Feedback
	if err := gdb.Find(&list).Error; err != nil {
		return FeedbackStats{}, err
	}

	acc := newRatingAccumulator(models.FeedbackRatingKeys)
	for _, fb := range list {
		acc.add(fb.Ratings.ByKey())
	}

	s := FeedbackStats{
		Total:    int64(len(list)),
		Averages: acc.averages(),
	}
	s.OverallAvg = acc.overall()
	s.Highest, s.Lowest = acc.extremes()
	return s, nil
}

type InternalFeedbackStats struct {
	Total               int64             `json:"total"`
	Averages            map[string]string `json:"averages"`
	OverallAvg          string            `json:"overallAvg"`
	Highest             string            `json:"highestCategory"`
	Lowest              string            `json:"lowestCategory"`
	RatingCounts        map[string]int64  `json:"ratingCounts"`
	VolunteerAgainCount int64             `json:"volunteerAgainCount"`
	HelpPlanCount       int64             `json:"helpPlanCount"`
}

func InternalFeedbackStatistics(gdb *gorm.DB) (InternalFeedbackStats, error) {
	var list []models.InternalFeedback
	if err := gdb.Find(&list).Error; err != nil {
		return InternalFeedbackStats{}, err
	}

	acc := newRatingAccumulator(models.InternalRatingKeys)
	s := InternalFeedbackStats{Total: int64(len(list))}
	for _, fb := range list {
		acc.add(fb.Ratings.ByKey())
		if fb.VolunteerAgain != nil && *fb.VolunteerAgain {
			s.VolunteerAgainCount++
		}
		if fb.HelpPlan != nil && *fb.HelpPlan {
			s.HelpPlanCount++
		}
	}
	s.Averages = acc.averages()
	s.OverallAvg = acc.overall()
	s.Highest, s.Lowest = acc.extremes()
	s.RatingCounts = acc.counts
	return s, nil
}

type DashboardStats struct {
	Vendors     VendorStats      `json:"vendors"`
	FoodVendors FoodVendorStats  `json:"foodVendors"`
	Teams       TeamStats        `json:"teams"`
	Sponsors    SponsorStats     `json:"sponsors"`
	Players     PlayerStats      `json:"players"`
	BounceHouse BounceHouseStats `json:"bounceHouse"`
	Revenue     RevenueSummary   `json:"revenue"`
}

type RevenueSummary struct {
	Total   float64 `json:"total"`
	Pending int64   `json:"pending"`
}

func DashboardStatistics(gdb *gorm.DB) (DashboardStats, error) {
	var (
		d   DashboardStats
		err error
	)
	if d.Vendors, err = VendorStatistics(gdb); err != nil {
		return d, err
	}
	if d.FoodVendors, err = FoodVendorStatistics(gdb); err != nil {
		return d, err
	}
	if d.Teams, err = TeamStatistics(gdb); err != nil {
		return d, err
	}
	if d.Sponsors, err = SponsorStatistics(gdb); err != nil {
		return d, err
	}
	if d.Players, err = PlayerStatistics(gdb); err != nil {
		return d, err
	}
	if d.BounceHouse, err = BounceHouseStatistics(gdb); err != nil {
		return d, err
	}
	d.Revenue.Total = d.Vendors.Revenue + d.FoodVendors.Revenue +
		d.Teams.Revenue + d.Sponsors.Revenue + d.Players.Revenue
	d.Revenue.Pending = d.Vendors.PendingPayments + d.FoodVendors.PendingPayments +
		d.Teams.PendingPayments + d.Sponsors.PendingPayments + d.Players.PendingPayments
	return d, nil
}
