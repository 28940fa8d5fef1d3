package selections

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchday.db")

	persister, err := NewBoltPersister(path)
	require.NoError(t, err)

	store := NewStore(persister, zerolog.Nop())
	store.AddTeam(81, "FC Barcelona", "https://crests.example/81.png")
	store.AddTeam(64, "Liverpool FC", "")
	store.AddCompetition(2021, "Premier League", "https://crests.example/PL.png")
	store.RemoveTeam(64)
	store.CompleteOnboarding()
	store.SetAPIToken("secret")
	store.SetLanguage("en")
	installID := store.InstallID()

	before := store.Snapshot()
	require.NoError(t, persister.Close())

	// Simulated process restart.
	reopened, err := NewBoltPersister(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	reloaded := NewStore(reopened, zerolog.Nop())

	assert.Equal(t, before, reloaded.Snapshot())
	assert.Equal(t, []int{81}, reloaded.FollowedTeamIDs())
	assert.Equal(t, []int{2021}, reloaded.FollowedCompetitionIDs())
	assert.False(t, reloaded.IsTeamSelected(64))
	assert.True(t, reloaded.HasCompletedOnboarding())
	assert.Equal(t, "secret", reloaded.APIToken())
	assert.Equal(t, "en", reloaded.Language())
	assert.Equal(t, installID, reloaded.InstallID())

	name, ok := reloaded.CompetitionName(2021)
	require.True(t, ok)
	assert.Equal(t, "Premier League", name)
}

func TestBoltLoadReportsMissingRecord(t *testing.T) {
	persister, err := NewBoltPersister(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	t.Cleanup(func() { persister.Close() })

	_, found, err := persister.Load()
	require.NoError(t, err)
	assert.False(t, found)
}
