package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(PasswordsGenerated.WithLabelValues(OutcomeOK))
	ObserveGeneration(OutcomeOK)
	ObserveGeneration(OutcomeOK)

	if got := testutil.ToFloat64(PasswordsGenerated.WithLabelValues(OutcomeOK)); got != before+2 {
		t.Errorf("passwords_generated_total{outcome=ok} = %v, want %v", got, before+2)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	ObserveStrength(3)
	ObserveRequest(http.MethodPost, http.StatusOK)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"passgen_strength_score", "passgen_http_requests_total", "go_goroutines"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
