// Package pricing holds the static fee tables. Fees always resolve from
// these tables on the server at creation time; client-supplied amounts
// are ignored so the public forms cannot tamper with pricing. Once
// stored, a fee is never recalculated, even if the record's category
// changes later.
package pricing

import "github.com/bazaarhq/backoffice/internal/config"

// Flat fees.
const (
	PlayerPracticeFee = 200
	FoodVendorFee     = 3000
)

// TeamFees maps competition category to registration fee.
var TeamFees = map[string]float64{
	"boys_elem_1_3":          350,
	"boys_elem_4_5":          350,
	"girls_elem_1_5":         350,
	"boys_middle":            350,
	"girls_middle":           350,
	"boys_high_competitive":  350,
	"boys_high_recreational": 350,
	"girls_high":             350,
	"mens_open":              350,
}

// TeamFee returns the fee for a category, 0 if the category is unknown.
func TeamFee(category string) float64 {
	return TeamFees[category]
}

// boothTable prices a quantity of booths of one type. Multi-booth rates
// are discounted, so 2 premium booths is not 2x the single price; the
// lookup is by exact count, never a formula.
var boothTable = map[string]map[int]float64{
	"premium":  {1: 600, 2: 1100, 3: 1500},
	"standard": {1: 350, 2: 750, 3: 1000},
}

// BoothPrice returns the total price for count booths of boothType, or
// 0 when (type, count) has no table entry. Validation rejects the zero.
func BoothPrice(boothType string, count int) float64 {
	return boothTable[boothType][count]
}

// MaxBoothsPerType is the largest quantity the table prices.
const MaxBoothsPerType = 3

// locationTable is the flat per-location price table used by the
// "location" vendor pricing variant.
var locationTable = map[string]float64{
	"main_hall":    500,
	"courtyard":    400,
	"entrance":     450,
	"food_court":   550,
	"gym_west":     350,
	"gym_east":     350,
	"outdoor_lawn": 300,
}

// LocationPrice returns the flat price for a booth location, 0 if the
// location is unknown.
func LocationPrice(location string) float64 {
	return locationTable[location]
}

// Locations lists the valid booth locations for the location variant.
func Locations() []string {
	out := make([]string, 0, len(locationTable))
	for loc := range locationTable {
		out = append(out, loc)
	}
	return out
}

// Sponsor tier minimum amounts per deployment variant.
var sponsorMinimums = map[string]map[string]float64{
	config.SponsorTiersClassic: {
		"diamond":  10000,
		"platinum": 5000,
		"gold":     2500,
		"silver":   1000,
	},
	config.SponsorTiersTitle: {
		"title":     15000,
		"platinum":  10000,
		"gold":      5000,
		"supporter": 1000,
	},
}

// SponsorMinimum returns the minimum sponsorship amount for a tier under
// the given variant and whether the tier exists in that variant.
func SponsorMinimum(variant, tier string) (float64, bool) {
	min, ok := sponsorMinimums[variant][tier]
	return min, ok
}

// SponsorTiers lists the tiers of a variant in display order.
func SponsorTiers(variant string) []string {
	switch variant {
	case config.SponsorTiersTitle:
		return []string{"title", "platinum", "gold", "supporter"}
	default:
		return []string{"diamond", "platinum", "gold", "silver"}
	}
}
