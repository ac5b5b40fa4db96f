package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListTeams(t *testing.T) {
	router := newTestRouter(stubSheetFetcher{grid: testSheetGrid()})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items := envelopeDataList(t, rec.Body.Bytes())
	if len(items) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(items))
	}
	first, _ := items[0].(map[string]any)
	if got, _ := first["id"].(string); got != "psu" {
		t.Fatalf("expected first team psu, got %v", first["id"])
	}
	if got, _ := first["short"].(string); got != "PSU" {
		t.Fatalf("expected short PSU, got %v", first["short"])
	}
}

func TestGetTeamRecords_MergesSources(t *testing.T) {
	router := newTestRouter(stubSheetFetcher{grid: testSheetGrid()})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/psu/records", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := envelopeData(t, rec.Body.Bytes())
	teamObj, _ := data["team"].(map[string]any)
	if got, _ := teamObj["id"].(string); got != "psu" {
		t.Fatalf("expected team psu, got %v", teamObj["id"])
	}

	records, ok := data["records"].([]any)
	if !ok {
		t.Fatalf("expected records array, got %v", data["records"])
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 merged records, got %d", len(records))
	}

	// Newest canonical date first.
	first, _ := records[0].(map[string]any)
	if got, _ := first["Date"].(string); got != "02/02/2025" {
		t.Fatalf("expected newest record first, got date %v", first["Date"])
	}

	// The store row wins the shared 01/15/2025 key over the sheet row.
	second, _ := records[1].(map[string]any)
	if got, _ := second["Date"].(string); got != "01/15/2025" {
		t.Fatalf("expected 01/15/2025 second, got %v", second["Date"])
	}
	if got, _ := second["Goals For"].(float64); got != 3 {
		t.Fatalf("expected store goals to win, got %v", second["Goals For"])
	}

	// The sheet-only row survives, its date serial decoded.
	third, _ := records[2].(map[string]any)
	if got, _ := third["Date"].(string); got != "01/04/2025" {
		t.Fatalf("expected serial date 01/04/2025, got %v", third["Date"])
	}
	if got, _ := third["Opponent"].(string); got != "Seaside Athletic" {
		t.Fatalf("expected sheet-only opponent, got %v", third["Opponent"])
	}

	diagnostics, _ := data["diagnostics"].(map[string]any)
	if got, _ := diagnostics["primary_fetched"].(float64); got != 2 {
		t.Fatalf("expected primary_fetched=2, got %v", diagnostics["primary_fetched"])
	}
	merge, _ := diagnostics["merge"].(map[string]any)
	if got, _ := merge["merged"].(float64); got != 3 {
		t.Fatalf("expected merged=3, got %v", merge["merged"])
	}
}

func TestGetTeamRecords_SheetFailureDegrades(t *testing.T) {
	router := newTestRouter(stubSheetFetcher{err: errors.New("sheets api: quota exceeded")})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/psu/records", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := envelopeData(t, rec.Body.Bytes())
	records, _ := data["records"].([]any)
	if len(records) != 2 {
		t.Fatalf("expected 2 store records, got %d", len(records))
	}

	diagnostics, _ := data["diagnostics"].(map[string]any)
	if got, _ := diagnostics["primary_error"].(string); got == "" {
		t.Fatalf("expected primary_error in diagnostics")
	}
	if got, _ := diagnostics["secondary_fetched"].(float64); got != 2 {
		t.Fatalf("expected secondary_fetched=2, got %v", diagnostics["secondary_fetched"])
	}
}

func TestGetTeamRecords_UnknownTeam(t *testing.T) {
	router := newTestRouter(stubSheetFetcher{grid: testSheetGrid()})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/nope/records", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetTeamRecordsRaw_SplitsSources(t *testing.T) {
	router := newTestRouter(stubSheetFetcher{grid: testSheetGrid()})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/psu/records/raw", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := envelopeData(t, rec.Body.Bytes())
	primary, _ := data["primary"].([]any)
	secondary, _ := data["secondary"].([]any)
	if len(primary) != 2 {
		t.Fatalf("expected 2 primary records, got %d", len(primary))
	}
	if len(secondary) != 2 {
		t.Fatalf("expected 2 secondary records, got %d", len(secondary))
	}

	// Raw views are pre-merge: the sheet's losing goals figure is intact.
	sheetRow, _ := primary[0].(map[string]any)
	if got, _ := sheetRow["Goals For"].(float64); got != 2 {
		t.Fatalf("expected sheet goals of 2 in raw view, got %v", sheetRow["Goals For"])
	}
}
