// Package rates fetches exchange rates from a JSON API shaped like open.er-api.com:
//
//	{"result": "success", "base_code": "EUR", "rates": {"EUR": 1, "USD": 1.08, ...}}
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
)

// DefaultURL is the free endpoint used when none is configured. %s is the base currency.
const DefaultURL = "https://open.er-api.com/v6/latest/%s"

// JSON paths of the response fields.
const (
	basePath  = "$.base_code"
	ratesPath = "$.rates"
)

// Fetcher downloads rate tables.
type Fetcher struct {
	Client *http.Client
	URL    string // with a %s placeholder for the base currency
}

// New returns a Fetcher using url, or DefaultURL, through a daily cached client.
func New(url string) *Fetcher {
	if url == "" {
		url = DefaultURL
	}
	return &Fetcher{Client: Daily(""), URL: url}
}

// Fetch returns the rates against base.
func (f *Fetcher) Fetch(ctx context.Context, base string) (*finanzas.Rates, error) {
	base = strings.ToUpper(base)
	if err := finanzas.ValidateCurrency(base); err != nil {
		return nil, fmt.Errorf("invalid base currency: %w", err)
	}
	addr := f.URL
	if strings.Contains(addr, "%s") {
		addr = fmt.Sprintf(addr, base)
	}

	var jobj any
	if err := jwget(ctx, f.client(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving rates for %q: %w", base, err)
	}
	return parse(jobj, base)
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

// parse extracts the table from a decoded response. The response base must match the
// requested one.
func parse(jobj any, base string) (*finanzas.Rates, error) {
	if got, err := jsonpath.Get(basePath, jobj); err == nil {
		if s, ok := got.(string); ok && !strings.EqualFold(s, base) {
			return nil, fmt.Errorf("rates are based on %q, want %q", s, base)
		}
	}

	jval, err := jsonpath.Get(ratesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", ratesPath, err)
	}
	values, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: not an object: %v", ratesPath, jval)
	}

	rates := finanzas.NewRates(base)
	for cur, v := range values {
		switch v := v.(type) {
		case json.Number:
			d, err := decimal.NewFromString(v.String())
			if err != nil {
				return nil, fmt.Errorf("invalid rate for %q: %w", cur, err)
			}
			rates.Set(cur, d)
		case float64:
			rates.Set(cur, decimal.NewFromFloat(v))
		default:
			return nil, fmt.Errorf("invalid rate for %q: %v", cur, v)
		}
	}
	return rates, nil
}

// jwget performs an HTTP GET request and decodes the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(data)
}
