package footballdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Match statuses as reported by the API. Unrecognized values are carried
// through verbatim and classify as neither finished, live nor scheduled.
const (
	StatusScheduled       = "SCHEDULED"
	StatusTimed           = "TIMED"
	StatusInPlay          = "IN_PLAY"
	StatusPaused          = "PAUSED"
	StatusExtraTime       = "EXTRA_TIME"
	StatusPenaltyShootout = "PENALTY_SHOOTOUT"
	StatusFinished        = "FINISHED"
	StatusPostponed       = "POSTPONED"
	StatusCancelled       = "CANCELLED"
	StatusSuspended       = "SUSPENDED"
)

// MatchResponse is the API's envelope around a list of matches.
type MatchResponse struct {
	Matches   []Match    `json:"matches"`
	ResultSet *ResultSet `json:"resultSet,omitempty"`
}

// ResultSet carries pagination metadata for match lists.
type ResultSet struct {
	Count        *int    `json:"count,omitempty"`
	Competitions *string `json:"competitions,omitempty"`
	First        *string `json:"first,omitempty"`
	Last         *string `json:"last,omitempty"`
}

// Match is a single fixture. Identity is the numeric id.
type Match struct {
	ID          int             `json:"id"`
	UTCDate     string          `json:"utcDate"`
	Status      string          `json:"status"`
	Matchday    *int            `json:"matchday,omitempty"`
	Stage       *string         `json:"stage,omitempty"`
	Group       *string         `json:"group,omitempty"`
	Venue       *string         `json:"venue,omitempty"`
	HomeTeam    TeamRef         `json:"homeTeam"`
	AwayTeam    TeamRef         `json:"awayTeam"`
	Score       *Score          `json:"score,omitempty"`
	Competition *CompetitionRef `json:"competition,omitempty"`
	Area        *Area           `json:"area,omitempty"`
}

// Score is the match score payload.
type Score struct {
	Winner   *string      `json:"winner,omitempty"`
	Duration *string      `json:"duration,omitempty"`
	FullTime *ScoreDetail `json:"fullTime,omitempty"`
	HalfTime *ScoreDetail `json:"halfTime,omitempty"`
}

// ScoreDetail holds home and away goal counts.
type ScoreDetail struct {
	Home *int `json:"home,omitempty"`
	Away *int `json:"away,omitempty"`
}

// Date parses the UTC kickoff timestamp.
func (m Match) Date() (time.Time, error) {
	return time.Parse(time.RFC3339, m.UTCDate)
}

// IsFinished reports whether the match has ended.
func (m Match) IsFinished() bool {
	return m.Status == StatusFinished
}

// IsLive reports whether the match is currently being played.
func (m Match) IsLive() bool {
	switch m.Status {
	case StatusInPlay, StatusPaused, StatusExtraTime, StatusPenaltyShootout:
		return true
	}

	return false
}

// IsScheduled reports whether the match is yet to start.
func (m Match) IsScheduled() bool {
	return m.Status == StatusScheduled || m.Status == StatusTimed
}

// ScoreText renders the full-time score for finished or live matches and a
// "vs" placeholder otherwise. Missing goal counts default to 0.
func (m Match) ScoreText() string {
	if m.Score == nil || !(m.IsFinished() || m.IsLive()) {
		return "vs"
	}

	home, away := 0, 0
	if m.Score.FullTime != nil {
		if m.Score.FullTime.Home != nil {
			home = *m.Score.FullTime.Home
		}
		if m.Score.FullTime.Away != nil {
			away = *m.Score.FullTime.Away
		}
	}

	return fmt.Sprintf("%d - %d", home, away)
}

// CompetitionMatchOptions filters a competition match listing.
type CompetitionMatchOptions struct {
	DateFrom string
	DateTo   string
	Status   string
	Matchday int
}

// TeamMatchOptions filters a team match listing.
type TeamMatchOptions struct {
	DateFrom string
	DateTo   string
	Status   string
	Limit    int
}

// CompetitionMatches lists matches of a competition, optionally filtered by
// date window, status and matchday.
func (c *Client) CompetitionMatches(ctx context.Context, competitionID int, opts CompetitionMatchOptions) (*MatchResponse, error) {
	params := url.Values{}
	if opts.DateFrom != "" {
		params.Set("dateFrom", opts.DateFrom)
	}
	if opts.DateTo != "" {
		params.Set("dateTo", opts.DateTo)
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}
	if opts.Matchday > 0 {
		params.Set("matchday", strconv.Itoa(opts.Matchday))
	}

	var resp MatchResponse
	endpoint := fmt.Sprintf("%s/%d%s", CompetitionsEndpoint, competitionID, MatchesEndpoint)
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// TeamMatches lists matches of a team. Limit defaults to 50.
func (c *Client) TeamMatches(ctx context.Context, teamID int, opts TeamMatchOptions) (*MatchResponse, error) {
	if opts.Limit <= 0 {
		opts.Limit = 50
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(opts.Limit))
	if opts.DateFrom != "" {
		params.Set("dateFrom", opts.DateFrom)
	}
	if opts.DateTo != "" {
		params.Set("dateTo", opts.DateTo)
	}
	if opts.Status != "" {
		params.Set("status", opts.Status)
	}

	var resp MatchResponse
	endpoint := fmt.Sprintf("%s/%d%s", TeamsEndpoint, teamID, MatchesEndpoint)
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// TodayMatches lists all matches of the current day across competitions.
func (c *Client) TodayMatches(ctx context.Context) (*MatchResponse, error) {
	var resp MatchResponse
	if err := c.get(ctx, MatchesEndpoint, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
