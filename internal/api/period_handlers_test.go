package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/valegre/turno/internal/models"
	"github.com/valegre/turno/internal/services"
)

func TestCreatePeriodPersistsCompensatoryPair(t *testing.T) {
	database := newTestDatabase(t)
	vale := createTestUser(t, database, "Vale", "vale@example.com", "StrongPass1", false)
	greta := createTestUser(t, database, "Greta", "greta@example.com", "StrongPass1", false)
	createTestUser(t, database, "Michi", "michi@example.com", "StrongPass1", true)
	app := newTestApp(t, database)

	cookie := loginAndExtractAuthCookie(t, app, "vale@example.com", "StrongPass1")

	payload := `{"user_id":` + formatID(vale.ID) + `,"start_date":"2024-01-10","end_date":"2024-01-12"}`
	request := httptest.NewRequest(http.MethodPost, "/api/periods", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create period request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	plan := services.PeriodPlan{}
	if err := json.NewDecoder(response.Body).Decode(&plan); err != nil {
		t.Fatalf("decode period plan: %v", err)
	}
	if plan.Primary.UserID != vale.ID || plan.Primary.DayCount != 3 {
		t.Fatalf("unexpected primary summary %+v", plan.Primary)
	}
	if plan.Compensatory.UserID != greta.ID {
		t.Fatalf("expected compensatory owner %d, got %d", greta.ID, plan.Compensatory.UserID)
	}
	if plan.Compensatory.StartDate != "2024-01-13" || plan.Compensatory.EndDate != "2024-01-15" {
		t.Fatalf("unexpected compensatory range %s..%s", plan.Compensatory.StartDate, plan.Compensatory.EndDate)
	}

	stored := []models.FeedingPeriod{}
	if err := database.Order("start_date ASC").Find(&stored).Error; err != nil {
		t.Fatalf("load periods: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 persisted periods, got %d", len(stored))
	}
	if stored[0].UserID != vale.ID || stored[1].UserID != greta.ID {
		t.Fatalf("unexpected persisted owners %d, %d", stored[0].UserID, stored[1].UserID)
	}
}

func TestCreatePeriodMissingInputReturnsBadRequest(t *testing.T) {
	database := newTestDatabase(t)
	createTestUser(t, database, "Vale", "vale@example.com", "StrongPass1", false)
	app := newTestApp(t, database)

	cookie := loginAndExtractAuthCookie(t, app, "vale@example.com", "StrongPass1")

	request := httptest.NewRequest(http.MethodPost, "/api/periods", strings.NewReader(`{"start_date":"2024-01-10"}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create period request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	count := int64(0)
	if err := database.Model(&models.FeedingPeriod{}).Count(&count).Error; err != nil {
		t.Fatalf("count periods: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no persisted periods, got %d", count)
	}
}

func TestCreatePeriodReversedRangeReturnsBadRequest(t *testing.T) {
	database := newTestDatabase(t)
	vale := createTestUser(t, database, "Vale", "vale@example.com", "StrongPass1", false)
	createTestUser(t, database, "Greta", "greta@example.com", "StrongPass1", false)
	app := newTestApp(t, database)

	cookie := loginAndExtractAuthCookie(t, app, "vale@example.com", "StrongPass1")

	payload := `{"user_id":` + formatID(vale.ID) + `,"start_date":"2024-01-12","end_date":"2024-01-10"}`
	request := httptest.NewRequest(http.MethodPost, "/api/periods", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create period request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	count := int64(0)
	if err := database.Model(&models.FeedingPeriod{}).Count(&count).Error; err != nil {
		t.Fatalf("count periods: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no persisted periods, got %d", count)
	}
}

func TestCreatePeriodWithoutEligibleUserKeepsPrimary(t *testing.T) {
	database := newTestDatabase(t)
	vale := createTestUser(t, database, "Vale", "vale@example.com", "StrongPass1", false)
	createTestUser(t, database, "Michi", "michi@example.com", "StrongPass1", true)
	app := newTestApp(t, database)

	cookie := loginAndExtractAuthCookie(t, app, "vale@example.com", "StrongPass1")

	payload := `{"user_id":` + formatID(vale.ID) + `,"start_date":"2024-01-10","end_date":"2024-01-12"}`
	request := httptest.NewRequest(http.MethodPost, "/api/periods", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Cookie", cookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create period request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", response.StatusCode)
	}

	result := map[string]string{}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if !strings.Contains(result["error"], "primary period was created") {
		t.Fatalf("expected partial-success message, got %q", result["error"])
	}

	stored := []models.FeedingPeriod{}
	if err := database.Find(&stored).Error; err != nil {
		t.Fatalf("load periods: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected only the primary period persisted, got %d", len(stored))
	}
	if stored[0].UserID != vale.ID || stored[0].StartDate != "2024-01-10" {
		t.Fatalf("unexpected persisted period %+v", stored[0])
	}
}

func TestListPeriodsOrdersByStartDate(t *testing.T) {
	database := newTestDatabase(t)
	vale := createTestUser(t, database, "Vale", "vale@example.com", "StrongPass1", false)
	app := newTestApp(t, database)

	for _, period := range []models.FeedingPeriod{
		{UserID: vale.ID, StartDate: "2024-02-10", EndDate: "2024-02-12"},
		{UserID: vale.ID, StartDate: "2024-01-10", EndDate: "2024-01-12"},
	} {
		if err := database.Create(&period).Error; err != nil {
			t.Fatalf("create period: %v", err)
		}
	}

	cookie := loginAndExtractAuthCookie(t, app, "vale@example.com", "StrongPass1")

	request := httptest.NewRequest(http.MethodGet, "/api/periods", nil)
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("list periods request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	result := struct {
		Periods []models.FeedingPeriod `json:"periods"`
	}{}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		t.Fatalf("decode periods response: %v", err)
	}
	if len(result.Periods) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(result.Periods))
	}
	if result.Periods[0].StartDate != "2024-01-10" {
		t.Fatalf("expected earliest period first, got %s", result.Periods[0].StartDate)
	}
}
