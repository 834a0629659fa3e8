package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aumtheo/Energie-Berechner/internal/services"

	"github.com/gin-gonic/gin"
)

type stubClimateResolver struct {
	climate services.Climate
	names   []string
}

func (s *stubClimateResolver) ClimateForName(ctx context.Context, name string) (services.Climate, error) {
	s.names = append(s.names, name)
	return s.climate, nil
}

func newBalanceRouter(t *testing.T, resolver ClimateResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	balance, err := services.NewBalanceService()
	if err != nil {
		t.Fatalf("NewBalanceService: %v", err)
	}

	controller, err := NewBalanceController(balance, resolver)
	if err != nil {
		t.Fatalf("NewBalanceController: %v", err)
	}

	router := gin.New()
	if err := controller.RegisterRoutes(router); err != nil {
		t.Fatalf("RegisterRoutes: %v", err)
	}

	return router
}

func TestNewBalanceControllerNilDependencies(t *testing.T) {
	balance, err := services.NewBalanceService()
	if err != nil {
		t.Fatalf("NewBalanceService: %v", err)
	}

	if _, err := NewBalanceController(nil, &stubClimateResolver{}); err == nil {
		t.Fatal("NewBalanceController with nil balance service: expected error")
	}
	if _, err := NewBalanceController(balance, nil); err == nil {
		t.Fatal("NewBalanceController with nil location service: expected error")
	}
}

func TestGetBalanceDefaults(t *testing.T) {
	resolver := &stubClimateResolver{climate: services.DefaultClimate()}
	router := newBalanceRouter(t, resolver)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/balance", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	var response map[string]json.RawMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	for _, key := range []string{"useful_energy", "final_energy", "primary_energy", "pv", "emissions", "building_data"} {
		if _, ok := response[key]; !ok {
			t.Fatalf("response missing key %q", key)
		}
	}

	var result services.BalanceResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}

	// Defaults describe a 20 x 15 m, 3-storey office without any U-values.
	if result.BuildingData.NetFloorArea != 765 {
		t.Fatalf("net floor area = %v, want 765", result.BuildingData.NetFloorArea)
	}
	if result.FinalEnergy.Lighting != 7650 {
		t.Fatalf("final lighting = %v, want 7650", result.FinalEnergy.Lighting)
	}

	if len(resolver.names) != 1 || resolver.names[0] != "" {
		t.Fatalf("resolved names = %v, want one empty name", resolver.names)
	}
}

func TestGetBalanceWithParameters(t *testing.T) {
	resolver := &stubClimateResolver{climate: services.DefaultClimate()}
	router := newBalanceRouter(t, resolver)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet,
		"/api/balance?laenge_ns=20&breite_ow=15&geschosse=3&geschosshoehe=2.8&personendichte=15"+
			"&u_wert_wand_nord=0.3&u_wert_wand_sued=0.3&u_wert_wand_ost=0.3&u_wert_wand_west=0.3"+
			"&u_wert_dach=0.2&u_wert_bodenplatte=0.4&ort=M%C3%BCnchen", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	var result services.BalanceResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}

	if result.FinalEnergy.Total != 84742.3 {
		t.Fatalf("final total = %v, want 84742.3", result.FinalEnergy.Total)
	}
	if result.Emissions.Variant1 != 42371.2 {
		t.Fatalf("emissions variant1 = %v, want 42371.2", result.Emissions.Variant1)
	}

	if len(resolver.names) != 1 || resolver.names[0] != "München" {
		t.Fatalf("resolved names = %v, want [München]", resolver.names)
	}
}

func TestGetBalanceInvalidParameter(t *testing.T) {
	router := newBalanceRouter(t, &stubClimateResolver{climate: services.DefaultClimate()})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/balance?laenge_ns=abc", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if response.Error == "" {
		t.Fatal("error message is empty")
	}
}

func TestGetBalanceInvalidDensity(t *testing.T) {
	router := newBalanceRouter(t, &stubClimateResolver{climate: services.DefaultClimate()})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/balance?personendichte=0", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestGetBalanceSkipsUnparseableUValues(t *testing.T) {
	router := newBalanceRouter(t, &stubClimateResolver{climate: services.DefaultClimate()})

	// A broken U-value is skipped, not rejected; the result matches the
	// run without it.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/balance?u_wert_dach=abc", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", recorder.Code, http.StatusOK, recorder.Body.String())
	}

	baseline := httptest.NewRecorder()
	router.ServeHTTP(baseline, httptest.NewRequest(http.MethodGet, "/api/balance", nil))

	if recorder.Body.String() != baseline.Body.String() {
		t.Fatalf("response differs from baseline:\n%s\n%s", recorder.Body.String(), baseline.Body.String())
	}
}
