package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/matchdayhq/matchday/go/clients/footballdata"
	"github.com/matchdayhq/matchday/go/internal/selections"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Loader assembles the combined feed by fetching matches for every followed
// team and competition. Fetches are fired concurrently; the client's pacing
// gate serializes their actual issuance.
type Loader struct {
	client *footballdata.Client
	store  *selections.Store
	config Config
	log    zerolog.Logger
}

// NewLoader creates a feed loader.
func NewLoader(client *footballdata.Client, store *selections.Store, config Config, logger zerolog.Logger) *Loader {
	return &Loader{
		client: client,
		store:  store,
		config: config,
		log:    logger,
	}
}

// Load fetches all contributing match lists and merges them into one
// deduplicated chronological feed. Any failed fetch fails the whole load;
// retry is the caller's call.
func (l *Loader) Load(ctx context.Context) ([]footballdata.Match, error) {
	now := time.Now()

	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var lists [][]footballdata.Match

	collect := func(matches []footballdata.Match) {
		mu.Lock()
		lists = append(lists, matches)
		mu.Unlock()
	}

	for _, id := range l.store.FollowedTeamIDs() {
		from, to := l.config.TeamWindow.Range(now)
		g.Go(func() error {
			resp, err := l.client.TeamMatches(ctx, id, footballdata.TeamMatchOptions{
				DateFrom: from,
				DateTo:   to,
			})
			if err != nil {
				l.log.Warn().Int("team_id", id).Err(err).Msg("failed to load team matches")
				return err
			}

			l.log.Debug().Int("team_id", id).Int("matches", len(resp.Matches)).Msg("loaded team matches")
			collect(resp.Matches)

			return nil
		})
	}

	for _, id := range l.store.FollowedCompetitionIDs() {
		from, to := l.config.CompetitionWindow.Range(now)
		g.Go(func() error {
			resp, err := l.client.CompetitionMatches(ctx, id, footballdata.CompetitionMatchOptions{
				DateFrom: from,
				DateTo:   to,
			})
			if err != nil {
				l.log.Warn().Int("competition_id", id).Err(err).Msg("failed to load competition matches")
				return err
			}

			l.log.Debug().Int("competition_id", id).Int("matches", len(resp.Matches)).Msg("loaded competition matches")
			collect(resp.Matches)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(lists...), nil
}
