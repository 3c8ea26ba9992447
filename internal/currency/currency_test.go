package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeCacheFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "cache.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleCache = `{
	"base": "USD",
	"rates": {"EUR": "0.92", "GBP": "0.79"},
	"names": {"USD": "US Dollar", "EUR": "Euro", "GBP": "British Pound"},
	"timestamp": 1700000000,
	"local": false
}`

func TestFileLoaderDecodesRatesAsExactRationals(t *testing.T) {
	path := writeCacheFile(t, t.TempDir(), sampleCache)
	loader := FileLoader{Path: path}

	defs, err := loader.Load(context.Background(), []string{"USD", "EUR", "GBP"})
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 3 {
		t.Fatalf("got %d definitions, want 3", len(defs))
	}

	byCode := map[string]Definition{}
	for _, d := range defs {
		byCode[d.Code] = d
	}

	usd := byCode["USD"]
	if usd.Multiplier.String() != "1" {
		t.Errorf("USD multiplier = %s, want 1", usd.Multiplier)
	}
	eur := byCode["EUR"]
	if got := eur.Multiplier.FractionString(); got != "23/25" {
		t.Errorf("EUR multiplier = %s, want 23/25 (0.92 exactly)", got)
	}
	if eur.BaseCode != "USD" {
		t.Errorf("EUR.BaseCode = %q, want USD", eur.BaseCode)
	}
}

func TestFileLoaderUnknownCodeFails(t *testing.T) {
	path := writeCacheFile(t, t.TempDir(), sampleCache)
	loader := FileLoader{Path: path}

	if _, err := loader.Load(context.Background(), []string{"JPY"}); err == nil {
		t.Fatal("expected an error for a code absent from the cache")
	}
}

func TestFileLoaderMissingFileFails(t *testing.T) {
	loader := FileLoader{Path: filepath.Join(t.TempDir(), "does-not-exist.json")}
	if _, err := loader.Load(context.Background(), []string{"USD"}); err == nil {
		t.Fatal("expected an error for a missing cache file")
	}
}

func TestHTTPLoaderServesFromRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleCache))
	}))
	defer srv.Close()

	loader := HTTPLoader{URL: srv.URL}
	defs, err := loader.Load(context.Background(), []string{"USD", "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
}

func TestHTTPLoaderFallsBackToFileOnFailure(t *testing.T) {
	path := writeCacheFile(t, t.TempDir(), sampleCache)
	loader := HTTPLoader{URL: "http://127.0.0.1:0/unreachable", FallbackTo: FileLoader{Path: path}}

	defs, err := loader.Load(context.Background(), []string{"USD", "GBP"})
	if err != nil {
		t.Fatalf("expected fallback to local cache to succeed, got %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
}

func TestHTTPLoaderFallsBackOnNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	path := writeCacheFile(t, t.TempDir(), sampleCache)
	loader := HTTPLoader{URL: srv.URL, FallbackTo: FileLoader{Path: path}}

	defs, err := loader.Load(context.Background(), []string{"USD"})
	if err != nil {
		t.Fatalf("expected fallback on 503, got %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("got %d definitions, want 1", len(defs))
	}
}
