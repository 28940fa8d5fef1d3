package schedule

import (
	"fmt"
	"os"
	"time"

	"github.com/matchdayhq/matchday/go/clients/footballdata"
	"gopkg.in/yaml.v3"
)

// Window is a date range around "today", expressed in days.
type Window struct {
	DaysBack    int `yaml:"days_back"`
	DaysForward int `yaml:"days_forward"`
}

// Range renders the window as dateFrom/dateTo query values.
func (w Window) Range(now time.Time) (from, to string) {
	const layout = "2006-01-02"

	return now.AddDate(0, 0, -w.DaysBack).Format(layout),
		now.AddDate(0, 0, w.DaysForward).Format(layout)
}

// Config holds the UI-level windowing and free-tier policy layered on top of
// the API client.
type Config struct {
	TeamWindow           Window   `yaml:"team_window"`
	CompetitionWindow    Window   `yaml:"competition_window"`
	FreeCompetitionCodes []string `yaml:"free_competition_codes"`
}

// DefaultConfig mirrors the shipped app policy: a wide window per followed
// team, a tighter one per competition, and the competition codes available on
// the free API plan.
func DefaultConfig() Config {
	return Config{
		TeamWindow:        Window{DaysBack: 30, DaysForward: 60},
		CompetitionWindow: Window{DaysBack: 14, DaysForward: 30},
		FreeCompetitionCodes: []string{
			"PL", "BL1", "PD", "SA", "FL1", "ELC", "DED", "PPL", "BSA", "CL", "WC", "EC",
		},
	}
}

// LoadConfig reads a yaml policy file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// FilterFreeTier keeps only competitions whose code is on the free-tier
// allow-list.
func (c Config) FilterFreeTier(comps []footballdata.Competition) []footballdata.Competition {
	allowed := make(map[string]struct{}, len(c.FreeCompetitionCodes))
	for _, code := range c.FreeCompetitionCodes {
		allowed[code] = struct{}{}
	}

	var out []footballdata.Competition
	for _, comp := range comps {
		if comp.Code == nil {
			continue
		}
		if _, ok := allowed[*comp.Code]; ok {
			out = append(out, comp)
		}
	}

	return out
}
