package universe

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Stock is one curated universe entry
type Stock struct {
	Ticker   string `yaml:"ticker" json:"ticker"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Market   string `yaml:"market" json:"market"` // KOSPI, KOSDAQ
}

// Universe is the hand-curated list of stocks to analyze
type Universe struct {
	Sector string  `yaml:"sector" json:"sector"`
	Stocks []Stock `yaml:"stocks" json:"stocks"`
}

// Tickers returns the tickers in list order
func (u *Universe) Tickers() []string {
	tickers := make([]string, len(u.Stocks))
	for i, s := range u.Stocks {
		tickers[i] = s.Ticker
	}
	return tickers
}

// Size returns the number of stocks
func (u *Universe) Size() int {
	return len(u.Stocks)
}

var tickerPattern = regexp.MustCompile(`^\d{6}$`)

// Validate checks the structural invariants of a universe
func Validate(u *Universe) error {
	if len(u.Stocks) == 0 {
		return fmt.Errorf("universe has no stocks")
	}

	seen := make(map[string]bool, len(u.Stocks))
	for i, s := range u.Stocks {
		if !tickerPattern.MatchString(s.Ticker) {
			return fmt.Errorf("stock %d: ticker %q is not a 6-digit code", i, s.Ticker)
		}
		if seen[s.Ticker] {
			return fmt.Errorf("duplicate ticker %s", s.Ticker)
		}
		seen[s.Ticker] = true

		if s.Name == "" {
			return fmt.Errorf("stock %s: name is required", s.Ticker)
		}
		if s.Market != "KOSPI" && s.Market != "KOSDAQ" {
			return fmt.Errorf("stock %s: market must be KOSPI or KOSDAQ, got %q", s.Ticker, s.Market)
		}
	}
	return nil
}

// Load reads a universe YAML file
// SSOT 핵심: KnownFields(true)로 오타/미사용 필드 즉시 실패
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}

	var u Universe
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // 알 수 없는 필드 발견 시 에러 반환
	if err := dec.Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to parse universe file: %w", err)
	}

	if err := Validate(&u); err != nil {
		return nil, fmt.Errorf("invalid universe: %w", err)
	}

	return &u, nil
}

// LoadOrDefault loads the given file, or the built-in universe when
// the path is empty
func LoadOrDefault(path string) (*Universe, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
