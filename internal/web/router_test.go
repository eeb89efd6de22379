package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazaarhq/backoffice/internal/config"
	"github.com/bazaarhq/backoffice/internal/db"
)

func testConfig() config.Config {
	return config.Config{
		AdminPassword: "hunter2",
		SponsorTiers:  config.SponsorTiersClassic,
		VendorPricing: config.VendorPricingBooths,
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	if err := db.Init(filepath.Join(t.TempDir(), "router_test.db")); err != nil {
		t.Fatalf("db init: %v", err)
	}
	return Router(testConfig())
}

// doJSON performs one request against the router, attaching the session
// cookie when given, and decodes the response envelope.
func doJSON(t *testing.T, r http.Handler, method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, env
}

func login(t *testing.T, r http.Handler) *http.Cookie {
	t.Helper()
	rec, env := doJSON(t, r, http.MethodPost, "/login", map[string]string{"password": "hunter2"}, nil)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	t.Fatal("no admin_session cookie set")
	return nil
}

func validTeamBody(name string, playerCount int) map[string]any {
	players := make([]map[string]any, playerCount)
	for i := range players {
		players[i] = map[string]any{
			"playerName":  fmt.Sprintf("Player %d", i+1),
			"dateOfBirth": "2012-04-05T00:00:00Z",
		}
	}
	return map[string]any{
		"teamName":     name,
		"organization": "Eastside Youth",
		"city":         "Plano",
		"category":     "boys_elem_1_3",
		"coachName":    "Sam Lee",
		"coachEmail":   "sam@example.com",
		"coachPhone":   "214-555-0101",
		"players":      players,
		"emergencyContact": map[string]any{
			"name":         "Dana Lee",
			"phone":        "214-555-0102",
			"relationship": "parent",
		},
		// Clients cannot set their own fee; this must be ignored.
		"registrationFee": 1,
	}
}

func TestRouterHealthz(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	rec, env := doJSON(t, r, http.MethodGet, "/api/teams/", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env["success"] != false {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec, _ = doJSON(t, r, http.MethodGet, "/api/teams/", nil, &http.Cookie{Name: "admin_session", Value: "forged"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("forged cookie: expected 401, got %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	rec, env := doJSON(t, r, http.MethodPost, "/login", map[string]string{"password": "nope"}, nil)
	if rec.Code != 200 {
		t.Fatalf("expected 200 envelope, got %d", rec.Code)
	}
	if env["success"] != false {
		t.Errorf("body = %s", rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			t.Error("session cookie set on failed login")
		}
	}
}

func TestTeamLifecycle(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	// Too few players is a business failure, still HTTP 200.
	rec, env := doJSON(t, r, http.MethodPost, "/api/teams/", validTeamBody("Sparrows", 4), cookie)
	if rec.Code != 200 || env["success"] != false {
		t.Fatalf("4-player create: %d %s", rec.Code, rec.Body.String())
	}

	rec, env = doJSON(t, r, http.MethodPost, "/api/teams/", validTeamBody("Falcons", 5), cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	data := env["data"].(map[string]any)
	teamID, _ := data["teamId"].(string)
	if teamID == "" {
		t.Fatalf("no teamId in %v", data)
	}
	if fee := data["registrationFee"]; fee != 350.0 {
		t.Errorf("registrationFee = %v, want 350 (client value ignored)", fee)
	}
	if data["registrationStatus"] != "pending" || data["paymentStatus"] != "pending" {
		t.Errorf("fresh team statuses = %v / %v", data["registrationStatus"], data["paymentStatus"])
	}
	if data["playerCount"] != 5.0 {
		t.Errorf("playerCount = %v", data["playerCount"])
	}

	rec, env = doJSON(t, r, http.MethodGet, "/api/teams/", nil, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}
	if list := env["data"].([]any); len(list) != 1 {
		t.Fatalf("list len = %d", len(list))
	}

	// Completing payment approves the team.
	rec, env = doJSON(t, r, http.MethodPatch, "/api/teams/"+teamID+"/payment",
		map[string]string{"paymentStatus": "completed", "paymentMethod": "zelle"}, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("payment: %d %s", rec.Code, rec.Body.String())
	}
	data = env["data"].(map[string]any)
	if data["paymentStatus"] != "completed" || data["registrationStatus"] != "approved" {
		t.Errorf("after payment: %v / %v", data["paymentStatus"], data["registrationStatus"])
	}
	if data["paymentDate"] == nil {
		t.Error("paymentDate not stamped")
	}
	if data["statusDisplay"] != "Ready to Play" {
		t.Errorf("statusDisplay = %v", data["statusDisplay"])
	}

	rec, env = doJSON(t, r, http.MethodDelete, "/api/teams/"+teamID, nil, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}

	// Second delete: the record is gone, business failure.
	rec, env = doJSON(t, r, http.MethodDelete, "/api/teams/"+teamID, nil, cookie)
	if rec.Code != 200 || env["success"] != false {
		t.Fatalf("second delete: %d %s", rec.Code, rec.Body.String())
	}
	if env["message"] != "Team not found" {
		t.Errorf("message = %v", env["message"])
	}
}

func TestVendorBoothPricingOnCreate(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	body := map[string]any{
		"businessName":        "Crafts Co",
		"contactPerson":       "Ana Ruiz",
		"email":               "ana@example.com",
		"phone":               "469-555-0199",
		"businessDescription": "Handmade goods",
		"vendorType":          "clothing",
		"acceptedTerms":       true,
		"booths": []map[string]any{
			{"boothId": "P1", "boothType": "premium"},
			{"boothId": "P2", "boothType": "premium"},
		},
	}
	rec, env := doJSON(t, r, http.MethodPost, "/api/vendors/", body, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	data := env["data"].(map[string]any)
	// Two premium booths price at the quantity tier, not 2x single.
	if data["totalBoothPrice"] != 1100.0 {
		t.Errorf("totalBoothPrice = %v, want 1100", data["totalBoothPrice"])
	}
	if data["originalPrice"] != 1200.0 {
		t.Errorf("originalPrice = %v, want 1200", data["originalPrice"])
	}
	if data["discountApplied"] != 100.0 {
		t.Errorf("discountApplied = %v, want 100", data["discountApplied"])
	}
	if data["boothCount"] != 2.0 {
		t.Errorf("boothCount = %v", data["boothCount"])
	}
}

func TestTeamApprovalStampsVerification(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	_, env := doJSON(t, r, http.MethodPost, "/api/teams/", validTeamBody("Eagles", 5), cookie)
	if env["success"] != true {
		t.Fatal("create failed")
	}
	data := env["data"].(map[string]any)
	teamID := data["teamId"].(string)
	if data["documentsVerified"] != false {
		t.Errorf("fresh team documentsVerified = %v", data["documentsVerified"])
	}

	rec, env := doJSON(t, r, http.MethodPatch, "/api/teams/"+teamID+"/status",
		map[string]any{"registrationStatus": "approved", "verifiedBy": "admin@example.com"}, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("approve: %d %s", rec.Code, rec.Body.String())
	}
	data = env["data"].(map[string]any)
	if data["documentsVerified"] != true {
		t.Error("approval did not mark documents verified")
	}
	if data["verifiedBy"] != "admin@example.com" {
		t.Errorf("verifiedBy = %v", data["verifiedBy"])
	}
	if data["verifiedDate"] == nil {
		t.Error("verifiedDate not stamped")
	}

	// Sending the team back to waitlist keeps the existing trail.
	_, env = doJSON(t, r, http.MethodPatch, "/api/teams/"+teamID+"/status",
		map[string]any{"registrationStatus": "waitlisted"}, cookie)
	data = env["data"].(map[string]any)
	if data["documentsVerified"] != true || data["verifiedDate"] == nil {
		t.Error("verification trail lost on status change")
	}
}

func TestPlayerChosenTeamRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	body := map[string]any{
		"playerName":    "Riley Chen",
		"dateOfBirth":   "2012-04-05T00:00:00Z",
		"shirtSize":     "MM",
		"currentGrade":  "7",
		"currentSchool": "Westwood Middle",
		"chosenTeam":    "Thunder",
		"parentInfo": map[string]any{
			"name":  "Mei Chen",
			"email": "mei@example.com",
			"phone": "214-555-0188",
		},
	}
	rec, env := doJSON(t, r, http.MethodPost, "/api/players/", body, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	data := env["data"].(map[string]any)
	if data["chosenTeam"] != "Thunder" {
		t.Errorf("chosenTeam = %v", data["chosenTeam"])
	}
	playerID := data["playerId"].(string)

	_, env = doJSON(t, r, http.MethodGet, "/api/players/", nil, cookie)
	list := env["data"].([]any)
	if len(list) != 1 || list[0].(map[string]any)["chosenTeam"] != "Thunder" {
		t.Errorf("list chosenTeam = %v", list)
	}

	body["chosenTeam"] = "Lightning"
	rec, env = doJSON(t, r, http.MethodPut, "/api/players/"+playerID, body, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	if env["data"].(map[string]any)["chosenTeam"] != "Lightning" {
		t.Errorf("updated chosenTeam = %v", env["data"].(map[string]any)["chosenTeam"])
	}
}

func TestSponsorTierEnforcement(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	body := map[string]any{
		"companyName":   "Acme",
		"contactPerson": "Lee Park",
		"email":         "lee@example.com",
		"phone":         "972-555-0123",
		"tier":          "Gold",
		"amount":        100,
	}
	rec, env := doJSON(t, r, http.MethodPost, "/api/sponsors/", body, cookie)
	if rec.Code != 200 || env["success"] != false {
		t.Fatalf("underfunded gold: %d %s", rec.Code, rec.Body.String())
	}

	body["amount"] = 2500
	rec, env = doJSON(t, r, http.MethodPost, "/api/sponsors/", body, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	data := env["data"].(map[string]any)
	if data["tier"] != "gold" {
		t.Errorf("tier = %v, want lowercased gold", data["tier"])
	}
	if data["tierDisplayName"] != "Gold" {
		t.Errorf("tierDisplayName = %v", data["tierDisplayName"])
	}
	sponsorID := data["sponsorId"].(string)

	// Upgrading the tier needs a matching amount edit in the same PUT.
	body["tier"] = "diamond"
	rec, env = doJSON(t, r, http.MethodPut, "/api/sponsors/"+sponsorID, body, cookie)
	if rec.Code != 200 || env["success"] != false {
		t.Fatalf("diamond at 2500: %d %s", rec.Code, rec.Body.String())
	}

	body["amount"] = 10000
	rec, env = doJSON(t, r, http.MethodPut, "/api/sponsors/"+sponsorID, body, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("upgrade: %d %s", rec.Code, rec.Body.String())
	}
	data = env["data"].(map[string]any)
	if data["tier"] != "diamond" || data["amount"] != 10000.0 {
		t.Errorf("after upgrade: tier=%v amount=%v", data["tier"], data["amount"])
	}
}

func TestDashboardEndpoints(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	rec, env := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("stats: %d %s", rec.Code, rec.Body.String())
	}
	data := env["data"].(map[string]any)
	for _, key := range []string{"vendors", "foodVendors", "teams", "sponsors", "players", "bounceHouse", "revenue"} {
		if _, ok := data[key]; !ok {
			t.Errorf("stats missing %q", key)
		}
	}

	rec, env = doJSON(t, r, http.MethodGet, "/api/dashboard/activity", nil, cookie)
	if rec.Code != 200 || env["success"] != true {
		t.Fatalf("activity: %d %s", rec.Code, rec.Body.String())
	}
}

func TestTeamQRPNG(t *testing.T) {
	r := newTestRouter(t)
	cookie := login(t, r)

	_, env := doJSON(t, r, http.MethodPost, "/api/teams/", validTeamBody("Hawks", 5), cookie)
	if env["success"] != true {
		t.Fatal("create failed")
	}
	teamID := env["data"].(map[string]any)["teamId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/"+teamID+"/qr.png", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("qr: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content-type = %q", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty png body")
	}
}
