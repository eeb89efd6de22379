// Package validate checks candidate records before they hit the store.
// Validators are pure: they take the full record (plus the deployment
// variant where rules differ) and return every field-level violation,
// so the admin sees all problems in one round trip instead of framework
// callbacks failing one at a time.
package validate

import (
	"fmt"
	"strings"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/models"
	"github.com/bazaarhq/backoffice/internal/pricing"
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

// Join renders violations as one admin-facing message string.
func Join(vs []Violation) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func requireStr(vs []Violation, field, value string) []Violation {
	if strings.TrimSpace(value) == "" {
		vs = append(vs, Violation{field, "is required"})
	}
	return vs
}

func maxLen(vs []Violation, field, value string, max int) []Violation {
	if len(value) > max {
		vs = append(vs, Violation{field, fmt.Sprintf("must be at most %d characters", max)})
	}
	return vs
}

func checkContact(vs []Violation, emailField, email, phoneField, phone string) []Violation {
	if _, ok := NormEmail(email); !ok {
		vs = append(vs, Violation{emailField, "is not a valid email address"})
	}
	if strings.TrimSpace(phone) != "" && NormPhone(phone) == "" {
		vs = append(vs, Violation{phoneField, "is not a valid phone number"})
	}
	return vs
}

func checkRatings(vs []Violation, byKey map[string]*int, keys []string, mandatory bool) []Violation {
	for _, k := range keys {
		v := byKey[k]
		if v == nil {
			if mandatory {
				vs = append(vs, Violation{"ratings." + k, "is required"})
			}
			continue
		}
		if *v < 1 || *v > 5 {
			vs = append(vs, Violation{"ratings." + k, "must be between 1 and 5"})
		}
	}
	return vs
}

// photoRequiredCategories are the competition categories where every
// player must upload an identity photo.
var photoRequiredCategories = map[string]bool{
	"boys_middle":            true,
	"girls_middle":           true,
	"boys_high_competitive":  true,
	"boys_high_recreational": true,
	"girls_high":             true,
}

func Team(t models.Team) []Violation {
	var vs []Violation
	vs = requireStr(vs, "teamName", t.TeamName)
	vs = requireStr(vs, "organization", t.Organization)
	vs = requireStr(vs, "city", t.City)
	vs = requireStr(vs, "coachName", t.CoachName)
	vs = requireStr(vs, "coachEmail", t.CoachEmail)
	vs = requireStr(vs, "coachPhone", t.CoachPhone)
	vs = checkContact(vs, "coachEmail", t.CoachEmail, "coachPhone", t.CoachPhone)

	if !oneOf(t.Category, models.TeamCategories) {
		vs = append(vs, Violation{"category", "is not a valid competition category"})
	}

	if len(t.Players) < models.TeamMinPlayers {
		vs = append(vs, Violation{"players", fmt.Sprintf("team must have at least %d players", models.TeamMinPlayers)})
	}
	if len(t.Players) > models.TeamMaxPlayers {
		vs = append(vs, Violation{"players", fmt.Sprintf("team cannot have more than %d players", models.TeamMaxPlayers)})
	}
	needPhoto := photoRequiredCategories[t.Category]
	for i, p := range t.Players {
		if strings.TrimSpace(p.PlayerName) == "" {
			vs = append(vs, Violation{fmt.Sprintf("players[%d].playerName", i), "is required"})
		}
		if p.DateOfBirth.IsZero() {
			vs = append(vs, Violation{fmt.Sprintf("players[%d].dateOfBirth", i), "is required"})
		}
		if needPhoto && strings.TrimSpace(p.IDPhotoURL) == "" {
			vs = append(vs, Violation{fmt.Sprintf("players[%d].idPhotoUrl", i), "identity photo is required for this category"})
		}
	}

	vs = requireStr(vs, "emergencyContact.name", t.EmergencyContact.Name)
	vs = requireStr(vs, "emergencyContact.phone", t.EmergencyContact.Phone)
	vs = requireStr(vs, "emergencyContact.relationship", t.EmergencyContact.Relationship)
	vs = maxLen(vs, "specialRequirements", t.SpecialRequirements, 300)
	return vs
}

func Sponsor(s models.Sponsor, variant string) []Violation {
	var vs []Violation
	vs = requireStr(vs, "companyName", s.CompanyName)
	vs = requireStr(vs, "contactPerson", s.ContactPerson)
	vs = requireStr(vs, "email", s.Email)
	vs = requireStr(vs, "phone", s.Phone)
	vs = checkContact(vs, "email", s.Email, "phone", s.Phone)

	min, ok := pricing.SponsorMinimum(variant, s.Tier)
	if !ok {
		vs = append(vs, Violation{"tier", "is not a valid sponsorship tier"})
	} else if s.Amount < min {
		vs = append(vs, Violation{"amount", fmt.Sprintf("%s tier requires at least %.0f", s.Tier, min)})
	}
	return vs
}

func Vendor(v models.Vendor, variant string) []Violation {
	var vs []Violation
	vs = requireStr(vs, "businessName", v.BusinessName)
	vs = requireStr(vs, "contactPerson", v.ContactPerson)
	vs = requireStr(vs, "email", v.Email)
	vs = requireStr(vs, "phone", v.Phone)
	vs = checkContact(vs, "email", v.Email, "phone", v.Phone)
	vs = requireStr(vs, "businessDescription", v.BusinessDescription)
	vs = maxLen(vs, "businessDescription", v.BusinessDescription, 500)
	vs = maxLen(vs, "specialRequirements", v.SpecialRequirements, 300)

	if !oneOf(v.VendorType, models.VendorTypes) {
		vs = append(vs, Violation{"vendorType", "is not a valid vendor type"})
	}

	switch variant {
	case config.VendorPricingLocation:
		if pricing.LocationPrice(v.BoothLocation) == 0 {
			vs = append(vs, Violation{"boothLocation", "is not a valid booth location"})
		}
	default:
		if len(v.Booths) == 0 {
			vs = append(vs, Violation{"booths", "at least one booth is required"})
		}
		counts := map[string]int{}
		for i, b := range v.Booths {
			if b.BoothType != models.BoothPremium && b.BoothType != models.BoothStandard {
				vs = append(vs, Violation{fmt.Sprintf("booths[%d].boothType", i), "must be premium or standard"})
				continue
			}
			counts[b.BoothType]++
		}
		for typ, n := range counts {
			if n > pricing.MaxBoothsPerType {
				vs = append(vs, Violation{"booths", fmt.Sprintf("at most %d %s booths can be booked", pricing.MaxBoothsPerType, typ)})
			}
		}
	}

	if !v.AcceptedTerms {
		vs = append(vs, Violation{"acceptedTerms", "terms must be accepted"})
	}
	return vs
}

func FoodVendor(v models.FoodVendor) []Violation {
	var vs []Violation
	vs = requireStr(vs, "businessName", v.BusinessName)
	vs = requireStr(vs, "contactPerson", v.ContactPerson)
	vs = requireStr(vs, "email", v.Email)
	vs = requireStr(vs, "phone", v.Phone)
	vs = checkContact(vs, "email", v.Email, "phone", v.Phone)
	vs = maxLen(vs, "menuDescription", v.MenuDescription, 500)
	vs = maxLen(vs, "specialRequirements", v.SpecialRequirements, 300)
	if !v.AcceptedTerms {
		vs = append(vs, Violation{"acceptedTerms", "terms must be accepted"})
	}
	return vs
}

func Player(p models.Player) []Violation {
	var vs []Violation
	vs = requireStr(vs, "playerName", p.PlayerName)
	if p.DateOfBirth.IsZero() {
		vs = append(vs, Violation{"dateOfBirth", "is required"})
	}
	if !oneOf(p.ShirtSize, models.ShirtSizes) {
		vs = append(vs, Violation{"shirtSize", "is not a valid shirt size"})
	}
	vs = requireStr(vs, "currentGrade", p.CurrentGrade)
	vs = requireStr(vs, "currentSchool", p.CurrentSchool)
	vs = requireStr(vs, "parentInfo.name", p.ParentInfo.Name)
	vs = requireStr(vs, "parentInfo.email", p.ParentInfo.Email)
	vs = requireStr(vs, "parentInfo.phone", p.ParentInfo.Phone)
	vs = checkContact(vs, "parentInfo.email", p.ParentInfo.Email, "parentInfo.phone", p.ParentInfo.Phone)
	vs = maxLen(vs, "comments", p.Comments, 500)
	return vs
}

func BounceHouse(b models.BounceHouseRegistration) []Violation {
	var vs []Violation
	vs = requireStr(vs, "parentName", b.ParentName)
	vs = requireStr(vs, "parentEmail", b.ParentEmail)
	vs = requireStr(vs, "parentPhone", b.ParentPhone)
	vs = checkContact(vs, "parentEmail", b.ParentEmail, "parentPhone", b.ParentPhone)

	if !oneOf(b.PaymentMethod, models.BouncePaymentMethods) {
		vs = append(vs, Violation{"paymentMethod", "is not a valid payment method"})
	} else if b.PaymentMethod == "other" && strings.TrimSpace(b.OtherPaymentMethod) == "" {
		vs = append(vs, Violation{"otherPaymentMethod", "is required when payment method is other"})
	}

	if len(b.Children) < models.BounceMinChildren {
		vs = append(vs, Violation{"children", "at least one child is required"})
	}
	if len(b.Children) > models.BounceMaxChildren {
		vs = append(vs, Violation{"children", fmt.Sprintf("maximum %d children allowed", models.BounceMaxChildren)})
	}
	for i, c := range b.Children {
		if strings.TrimSpace(c.Name) == "" {
			vs = append(vs, Violation{fmt.Sprintf("children[%d].name", i), "is required"})
		}
		if c.Age < models.BounceMinAge || c.Age > models.BounceMaxAge {
			vs = append(vs, Violation{fmt.Sprintf("children[%d].age", i), fmt.Sprintf("must be between %d and %d", models.BounceMinAge, models.BounceMaxAge)})
		}
		if c.Gender != "male" && c.Gender != "female" {
			vs = append(vs, Violation{fmt.Sprintf("children[%d].gender", i), "must be male or female"})
		}
	}

	if strings.TrimSpace(b.Signature) == "" {
		vs = append(vs, Violation{"signature", "is required"})
	}
	if b.SignatureType != models.SignatureDraw && b.SignatureType != models.SignatureTyped {
		vs = append(vs, Violation{"signatureType", "must be draw or type"})
	}
	if !b.AcceptedTerms {
		vs = append(vs, Violation{"acceptedTerms", "terms must be accepted"})
	}
	return vs
}

func Feedback(f models.Feedback, ratingsMandatory bool) []Violation {
	var vs []Violation
	if _, ok := NormEmail(f.Email); !ok {
		vs = append(vs, Violation{"email", "is not a valid email address"})
	}
	vs = checkRatings(vs, f.Ratings.ByKey(), models.FeedbackRatingKeys, ratingsMandatory)
	vs = maxLen(vs, "enjoyedMost", f.EnjoyedMost, 1000)
	vs = maxLen(vs, "improvements", f.Improvements, 1000)
	vs = maxLen(vs, "issues", f.Issues, 1000)
	vs = maxLen(vs, "suggestions", f.Suggestions, 1000)
	return vs
}

func InternalFeedback(f models.InternalFeedback) []Violation {
	var vs []Violation
	if _, ok := NormEmail(f.Email); !ok {
		vs = append(vs, Violation{"email", "is not a valid email address"})
	}
	for i, role := range f.Roles {
		if !oneOf(role, models.InternalRoles) {
			vs = append(vs, Violation{fmt.Sprintf("roles[%d]", i), "is not a valid role"})
		}
	}
	vs = checkRatings(vs, f.Ratings.ByKey(), models.InternalRatingKeys, false)
	vs = maxLen(vs, "wentWell", f.WentWell, 1000)
	vs = maxLen(vs, "wentPoorly", f.WentPoorly, 1000)
	vs = maxLen(vs, "improvements", f.Improvements, 1000)
	vs = maxLen(vs, "otherComments", f.OtherComments, 1000)
	return vs
}
