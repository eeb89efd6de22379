package services

import (
	"fmt"
	"time"
)

// ComputeAge returns whole years between dob and now using calendar
// comparison (year minus one until the birthday has passed), not raw
// day division. Never negative.
func ComputeAge(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// AverageRating formats the mean of the supplied rating values to two
// decimals. An empty set yields "0.00", never NaN.
func AverageRating(vals []int) string {
	if len(vals) == 0 {
		return "0.00"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(vals)))
}
