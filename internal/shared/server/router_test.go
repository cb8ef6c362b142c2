package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/soupine/linkedin-backend-extraction/internal/classify"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/config"
	"github.com/soupine/linkedin-backend-extraction/internal/shared/telemetry"
)

func newTestConfig(t *testing.T) config.Config {
	t.Helper()
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })
	return config.Config{
		ObjectStoreType:    "local",
		LocalStoreDir:      t.TempDir(),
		ClassifierProvider: "stub",
	}
}

func TestRouterHealth(t *testing.T) {
	r := NewRouter(newTestConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRouterMetrics(t *testing.T) {
	r := NewRouter(newTestConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "review_started_total") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestBuildClassifierStubIsDegraded(t *testing.T) {
	cl := buildClassifier(config.Config{ClassifierProvider: "stub"})

	if _, err := cl.ClassifySentiment(context.Background(), "text"); !errors.Is(err, classify.ErrUnavailable) {
		t.Fatalf("sentiment err = %v, want ErrUnavailable", err)
	}
	if _, err := cl.ClassifyZeroShot(context.Background(), "text", []string{"clear"}); !errors.Is(err, classify.ErrUnavailable) {
		t.Fatalf("zero-shot err = %v, want ErrUnavailable", err)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":7000": ":7000",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
