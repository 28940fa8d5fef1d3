package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ScorersResponse is the envelope around a competition's top scorers.
type ScorersResponse struct {
	Competition *CompetitionRef `json:"competition,omitempty"`
	Season      *Season         `json:"season,omitempty"`
	Scorers     []Scorer        `json:"scorers"`
}

// Scorer is one entry in the top scorer table. Identity is the player id.
type Scorer struct {
	Player        Player   `json:"player"`
	Team          *TeamRef `json:"team,omitempty"`
	PlayedMatches *int     `json:"playedMatches,omitempty"`
	Goals         *int     `json:"goals,omitempty"`
	Assists       *int     `json:"assists,omitempty"`
	Penalties     *int     `json:"penalties,omitempty"`
}

// Scorers fetches a competition's top scorers by numeric id. Limit defaults
// to 20.
func (c *Client) Scorers(ctx context.Context, competitionID int, limit int) (*ScorersResponse, error) {
	return c.scorers(ctx, fmt.Sprintf("%d", competitionID), limit)
}

// ScorersByCode fetches a competition's top scorers by code, e.g. "PL".
func (c *Client) ScorersByCode(ctx context.Context, code string, limit int) (*ScorersResponse, error) {
	return c.scorers(ctx, code, limit)
}

func (c *Client) scorers(ctx context.Context, competition string, limit int) (*ScorersResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var resp ScorersResponse
	endpoint := fmt.Sprintf("%s/%s/scorers", CompetitionsEndpoint, competition)
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
