package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/matchdayhq/matchday/go/clients/footballdata"
	"github.com/matchdayhq/matchday/go/internal/l10n"
	"github.com/matchdayhq/matchday/go/internal/schedule"
	"github.com/matchdayhq/matchday/go/internal/selections"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := loadAppConfig()

	policy, err := loadPolicy(cfg.PolicyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load schedule policy")
	}

	persister, err := selections.NewBoltPersister(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.StorePath).Msg("failed to open selection store")
	}
	defer persister.Close()

	store := selections.NewStore(persister, log.Logger)
	if cfg.Token != "" {
		store.SetAPIToken(cfg.Token)
	}

	lang := l10n.Parse(store.Language())
	client := footballdata.NewClient(store.APIToken())
	ctx := context.Background()

	log.Info().
		Str("install_id", store.InstallID()).
		Int("selections", store.TotalSelections()).
		Msg("matchday starting")

	comps, err := client.Competitions(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("message", l10n.ErrorMessage(lang, err)).Msg("failed to list competitions")
	}

	free := policy.FilterFreeTier(comps)
	fmt.Printf("Free-tier competitions (%d):\n", len(free))
	for _, comp := range free {
		fmt.Printf("  [%d] %s\n", comp.ID, comp.Name)
	}

	if store.TotalSelections() == 0 {
		log.Info().Msg("nothing followed yet, skipping schedule")
		return
	}

	loader := schedule.NewLoader(client, store, policy, log.Logger)

	feed, err := loader.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("message", l10n.ErrorMessage(lang, err)).Msg("failed to load schedule")
	}

	for _, day := range schedule.GroupByDay(feed, lang, false) {
		fmt.Println(day.Label)
		for _, m := range day.Matches {
			fmt.Printf("  %s %s %s (%s)\n",
				teamName(m.HomeTeam), m.ScoreText(), teamName(m.AwayTeam),
				l10n.StatusLabel(lang, m.Status))
		}
	}
}

func teamName(ref footballdata.TeamRef) string {
	if ref.ShortName != nil && *ref.ShortName != "" {
		return *ref.ShortName
	}
	if ref.Name != nil {
		return *ref.Name
	}

	return "?"
}
