package footballdata

import (
	"context"
	"fmt"
)

// StandingsResponse is the envelope around a competition's tables.
type StandingsResponse struct {
	Competition *CompetitionRef `json:"competition,omitempty"`
	Season      *Season         `json:"season,omitempty"`
	Standings   []StandingGroup `json:"standings"`
}

// StandingGroup is one named table within a competition, keyed by
// stage/type/group.
type StandingGroup struct {
	Stage *string       `json:"stage,omitempty"`
	Type  *string       `json:"type,omitempty"`
	Group *string       `json:"group,omitempty"`
	Table []StandingRow `json:"table"`
}

// Key identifies the group within its response.
func (g StandingGroup) Key() string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	return fmt.Sprintf("%s-%s-%s", deref(g.Stage), deref(g.Type), deref(g.Group))
}

// StandingRow is one rank within a table. Identity is the position, which is
// only unique within its group.
type StandingRow struct {
	Position       int     `json:"position"`
	Team           TeamRef `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Form           *string `json:"form,omitempty"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

// Standings fetches a competition's tables by numeric id.
func (c *Client) Standings(ctx context.Context, competitionID int) (*StandingsResponse, error) {
	return c.standings(ctx, fmt.Sprintf("%d", competitionID))
}

// StandingsByCode fetches a competition's tables by code, e.g. "PL".
func (c *Client) StandingsByCode(ctx context.Context, code string) (*StandingsResponse, error) {
	return c.standings(ctx, code)
}

func (c *Client) standings(ctx context.Context, competition string) (*StandingsResponse, error) {
	var resp StandingsResponse
	endpoint := fmt.Sprintf("%s/%s/standings", CompetitionsEndpoint, competition)
	if err := c.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
