package footballdata

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Player positions use a fixed vocabulary; anything else is passed through.
const (
	PositionGoalkeeper = "Goalkeeper"
	PositionDefence    = "Defence"
	PositionMidfield   = "Midfield"
	PositionOffence    = "Offence"
)

// TeamResponse is the envelope around a competition's team list.
type TeamResponse struct {
	Teams []Team `json:"teams,omitempty"`
}

// Team is a club with optional squad and staff detail. Identity is the
// numeric id.
type Team struct {
	ID                  int              `json:"id"`
	Name                string           `json:"name"`
	ShortName           *string          `json:"shortName,omitempty"`
	TLA                 *string          `json:"tla,omitempty"`
	Crest               *string          `json:"crest,omitempty"`
	Address             *string          `json:"address,omitempty"`
	Website             *string          `json:"website,omitempty"`
	Founded             *int             `json:"founded,omitempty"`
	ClubColors          *string          `json:"clubColors,omitempty"`
	Venue               *string          `json:"venue,omitempty"`
	Coach               *Coach           `json:"coach,omitempty"`
	Squad               []Player         `json:"squad,omitempty"`
	Staff               []Staff          `json:"staff,omitempty"`
	RunningCompetitions []CompetitionRef `json:"runningCompetitions,omitempty"`
	Area                *Area            `json:"area,omitempty"`
}

// TeamRef is the abbreviated team shape embedded in matches and standings.
type TeamRef struct {
	ID        *int    `json:"id,omitempty"`
	Name      *string `json:"name,omitempty"`
	ShortName *string `json:"shortName,omitempty"`
	TLA       *string `json:"tla,omitempty"`
	Crest     *string `json:"crest,omitempty"`
}

// Coach is a team's head coach.
type Coach struct {
	ID          *int      `json:"id,omitempty"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Name        *string   `json:"name,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	Contract    *Contract `json:"contract,omitempty"`
}

// Player is a squad member or a person record. Identity is the numeric id.
type Player struct {
	ID          int       `json:"id"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Position    *string   `json:"position,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	ShirtNumber *int      `json:"shirtNumber,omitempty"`
	MarketValue *int      `json:"marketValue,omitempty"`
	Contract    *Contract `json:"contract,omitempty"`
}

// Staff is a non-playing squad member.
type Staff struct {
	ID          int       `json:"id"`
	Name        *string   `json:"name,omitempty"`
	DateOfBirth *string   `json:"dateOfBirth,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	Contract    *Contract `json:"contract,omitempty"`
}

// Contract holds a contract's start and end dates.
type Contract struct {
	Start *string `json:"start,omitempty"`
	Until *string `json:"until,omitempty"`
}

// DisplayName returns the player's name, falling back to first and last name.
func (p Player) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}

	var parts []string
	if p.FirstName != nil && *p.FirstName != "" {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != "" {
		parts = append(parts, *p.LastName)
	}

	return strings.Join(parts, " ")
}

// Age computes the player's age in whole calendar years relative to now.
// Returns false when the date of birth is missing or unparseable.
func (p Player) Age(now time.Time) (int, bool) {
	if p.DateOfBirth == nil {
		return 0, false
	}

	born, err := time.Parse("2006-01-02", *p.DateOfBirth)
	if err != nil {
		return 0, false
	}

	return now.Year() - born.Year(), true
}

// Team fetches a team with its squad and staff.
func (c *Client) Team(ctx context.Context, id int) (*Team, error) {
	var team Team
	if err := c.get(ctx, fmt.Sprintf("%s/%d", TeamsEndpoint, id), nil, &team); err != nil {
		return nil, err
	}

	return &team, nil
}

// CompetitionTeams lists the teams participating in a competition.
func (c *Client) CompetitionTeams(ctx context.Context, competitionID int) (*TeamResponse, error) {
	var resp TeamResponse
	endpoint := fmt.Sprintf("%s/%d%s", CompetitionsEndpoint, competitionID, TeamsEndpoint)
	if err := c.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
