package footballdata

import (
	"context"
	"fmt"
)

// Area is the country or confederation a competition or team belongs to.
type Area struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code,omitempty"`
	Flag *string `json:"flag,omitempty"`
}

// Season describes one season of a competition.
type Season struct {
	ID              int      `json:"id"`
	StartDate       *string  `json:"startDate,omitempty"`
	EndDate         *string  `json:"endDate,omitempty"`
	CurrentMatchday *int     `json:"currentMatchday,omitempty"`
	Winner          *TeamRef `json:"winner,omitempty"`
}

// Competition is a league or cup. Identity is the numeric id.
type Competition struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Code          *string `json:"code,omitempty"`
	Type          *string `json:"type,omitempty"`
	Emblem        *string `json:"emblem,omitempty"`
	Area          *Area   `json:"area,omitempty"`
	CurrentSeason *Season `json:"currentSeason,omitempty"`
}

// CompetitionRef is the abbreviated competition shape embedded in other
// responses.
type CompetitionRef struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Code   *string `json:"code,omitempty"`
	Type   *string `json:"type,omitempty"`
	Emblem *string `json:"emblem,omitempty"`
}

// CompetitionResponse is the envelope around the competition list endpoint.
type CompetitionResponse struct {
	Competitions []Competition `json:"competitions"`
}

// Competitions lists all competitions visible to the configured plan.
func (c *Client) Competitions(ctx context.Context) ([]Competition, error) {
	var resp CompetitionResponse
	if err := c.get(ctx, CompetitionsEndpoint, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Competitions, nil
}

// Competition fetches a single competition by id.
func (c *Client) Competition(ctx context.Context, id int) (*Competition, error) {
	var comp Competition
	if err := c.get(ctx, fmt.Sprintf("%s/%d", CompetitionsEndpoint, id), nil, &comp); err != nil {
		return nil, err
	}

	return &comp, nil
}
