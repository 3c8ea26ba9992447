// Package currency implements the external collaborator spec.md §1
// describes only through its interface: "an implementation that, given
// a set of currency names, returns a sequence of unit-definitions with a
// shared base and per-unit multipliers." The unit-algebra core never
// imports this package; the parser accepts a Loader and calls it once
// for each currency_block (spec.md §4.8.1) it parses, at the point the
// block is encountered.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/unitconv/unitconv/internal/rational"
)

// Definition is one resolved currency unit: Multiplier converts a value
// in this currency to the shared BaseCode currency (Offset is always
// zero for currencies, carried only so the shape lines up with a general
// Unit construction call).
type Definition struct {
	Code       string
	LongName   string
	BaseCode   string
	Multiplier *rational.Rational
	Offset     *rational.Rational
}

// Loader resolves a set of currency codes to Definitions sharing a
// common base.
type Loader interface {
	Load(ctx context.Context, codes []string) ([]Definition, error)
}

// cacheFile mirrors the JSON shape of spec.md §6's currency cache file:
// base, rates, names, timestamp, and a cache-local flag. Rates are
// decoded as json.Number and converted through rational.FromDecimalString
// rather than float64, so a currency rate entering the engine from JSON
// never introduces the binary-floating-point error spec.md's
// "no floating-point arithmetic in the conversion path" forbids.
type cacheFile struct {
	Base      string                 `json:"base"`
	Rates     map[string]json.Number `json:"rates"`
	Names     map[string]string      `json:"names"`
	Timestamp int64                  `json:"timestamp"`
	Local     bool                   `json:"local"`
}

func (c *cacheFile) definitionsFor(codes []string) ([]Definition, error) {
	defs := make([]Definition, 0, len(codes))
	for _, code := range codes {
		if code == c.Base {
			defs = append(defs, Definition{
				Code: code, LongName: c.Names[code], BaseCode: c.Base,
				Multiplier: rational.One(), Offset: rational.Zero(),
			})
			continue
		}
		rate, ok := c.Rates[code]
		if !ok {
			return nil, fmt.Errorf("currency: no rate for code %q in cache (base %q)", code, c.Base)
		}
		mult, err := rational.FromDecimalString(rate.String())
		if err != nil {
			return nil, fmt.Errorf("currency: rate for %q is not a valid decimal: %w", code, err)
		}
		defs = append(defs, Definition{
			Code: code, LongName: c.Names[code], BaseCode: c.Base,
			Multiplier: mult, Offset: rational.Zero(),
		})
	}
	return defs, nil
}

// FileLoader reads a local cache file in the shape of spec.md §6.
type FileLoader struct {
	Path string
}

// Load implements Loader by reading and decoding Path.
func (f FileLoader) Load(_ context.Context, codes []string) ([]Definition, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("currency: reading cache file %q: %w", f.Path, err)
	}
	var cache cacheFile
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("currency: decoding cache file %q: %w", f.Path, err)
	}
	return cache.definitionsFor(codes)
}

// HTTPLoader fetches the same cache shape from a remote endpoint,
// falling back to a local FileLoader cache on any failure. The fallback
// is silent (no error or log records the remote failure), and fetched
// data is not written back to the cache file.
type HTTPLoader struct {
	URL        string
	Client     *http.Client
	FallbackTo FileLoader
}

// Load implements Loader.
func (h HTTPLoader) Load(ctx context.Context, codes []string) ([]Definition, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return h.FallbackTo.Load(ctx, codes)
	}
	resp, err := client.Do(req)
	if err != nil {
		return h.FallbackTo.Load(ctx, codes)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return h.FallbackTo.Load(ctx, codes)
	}
	var cache cacheFile
	if err := json.NewDecoder(resp.Body).Decode(&cache); err != nil {
		return h.FallbackTo.Load(ctx, codes)
	}
	return cache.definitionsFor(codes)
}
