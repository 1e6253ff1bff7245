package currency

import (
	"context"
	"fmt"
	"strings"
)

// Service answers display-currency questions for the storefront: what the
// catalog's base currency is, which display currencies are offered, and at
// what rate. Rates come from config at startup; the base currency is always
// offered at 1.0.
type Service struct {
	base  string
	rates map[string]float64
}

type RateInfo struct {
	Code string
	Rate float64
}

func NewService(base string, rates map[string]float64) *Service {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "EUR"
	}
	normalized := make(map[string]float64, len(rates)+1)
	for code, rate := range rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || rate <= 0 {
			continue
		}
		normalized[code] = rate
	}
	normalized[base] = 1.0
	return &Service{base: base, rates: normalized}
}

func (s *Service) BaseCurrency() string { return s.base }

func (s *Service) DefaultDisplayCurrency() string { return s.base }

// NormalizeDisplay upper-cases and validates a requested display currency.
func (s *Service) NormalizeDisplay(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, ok := s.rates[code]; ok {
		return code, true
	}
	return "", false
}

// DisplayRate returns the base→display conversion rate.
func (s *Service) DisplayRate(_ context.Context, code string) (RateInfo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	rate, ok := s.rates[code]
	if !ok {
		return RateInfo{}, fmt.Errorf("currency: no rate for %q", code)
	}
	return RateInfo{Code: code, Rate: rate}, nil
}
