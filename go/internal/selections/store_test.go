package selections

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()

	persister := &MemoryPersister{}

	return NewStore(persister, zerolog.Nop()), persister
}

func TestAddAndQuerySelections(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddTeam(81, "FC Barcelona", "https://crests.example/81.png")
	store.AddCompetition(2021, "Premier League", "")

	assert.True(t, store.IsTeamSelected(81))
	assert.True(t, store.IsCompetitionSelected(2021))
	assert.False(t, store.IsTeamSelected(64))
	assert.Equal(t, 2, store.TotalSelections())
	assert.Equal(t, 8, store.RemainingSlots())
	assert.True(t, store.CanAddMore())

	name, ok := store.TeamName(81)
	require.True(t, ok)
	assert.Equal(t, "FC Barcelona", name)

	crest, ok := store.TeamCrest(81)
	require.True(t, ok)
	assert.Equal(t, "https://crests.example/81.png", crest)

	_, ok = store.CompetitionEmblem(2021)
	assert.False(t, ok)
}

func TestCapacityNeverExceeded(t *testing.T) {
	store, _ := newTestStore(t)

	for id := 1; id <= 7; id++ {
		store.AddTeam(id, "Team", "")
	}
	for id := 101; id <= 107; id++ {
		store.AddCompetition(id, "Competition", "")
	}

	assert.Equal(t, MaxSelections, store.TotalSelections())
	assert.False(t, store.CanAddMore())
	assert.Equal(t, 0, store.RemainingSlots())
	assert.False(t, store.IsCompetitionSelected(105))

	store.RemoveTeam(1)
	assert.True(t, store.CanAddMore())

	store.AddCompetition(105, "Competition", "")
	assert.True(t, store.IsCompetitionSelected(105))
	assert.Equal(t, MaxSelections, store.TotalSelections())
}

func TestAddTeamIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddTeam(81, "FC Barcelona", "")
	store.AddTeam(81, "Duplicate", "")

	assert.Equal(t, 1, store.TotalSelections())
	assert.Equal(t, []int{81}, store.FollowedTeamIDs())

	name, _ := store.TeamName(81)
	assert.Equal(t, "FC Barcelona", name)
}

func TestRemoveForgetsCachedName(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddTeam(81, "FC Barcelona", "https://crests.example/81.png")
	store.RemoveTeam(81)

	assert.False(t, store.IsTeamSelected(81))
	_, ok := store.TeamName(81)
	assert.False(t, ok)

	store.AddTeam(81, "Barça", "")

	name, ok := store.TeamName(81)
	require.True(t, ok)
	assert.Equal(t, "Barça", name)
	_, ok = store.TeamCrest(81)
	assert.False(t, ok)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	store, persister := newTestStore(t)

	saved := persister.rec
	store.RemoveTeam(999)
	store.RemoveCompetition(999)

	assert.Equal(t, saved, persister.rec)
	assert.Equal(t, 0, store.TotalSelections())
}

func TestEmptyNameGetsFallback(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddTeam(81, "", "")

	name, ok := store.TeamName(81)
	require.True(t, ok)
	assert.NotEmpty(t, name)
}

func TestResetAllReturnsToFirstRun(t *testing.T) {
	store, _ := newTestStore(t)

	store.SetAPIToken("secret")
	store.AddTeam(81, "FC Barcelona", "crest")
	store.AddCompetition(2021, "Premier League", "emblem")
	store.CompleteOnboarding()
	installID := store.InstallID()

	store.ResetAll()

	assert.False(t, store.IsTeamSelected(81))
	assert.False(t, store.IsCompetitionSelected(2021))
	assert.Equal(t, 0, store.TotalSelections())
	assert.False(t, store.HasCompletedOnboarding())
	_, ok := store.TeamName(81)
	assert.False(t, ok)

	// Credential and install identity survive a reset.
	assert.Equal(t, "secret", store.APIToken())
	assert.Equal(t, installID, store.InstallID())
}

func TestOnboardingFlag(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.HasCompletedOnboarding())
	store.CompleteOnboarding()
	assert.True(t, store.HasCompletedOnboarding())
}

func TestLanguageDefaultsAndUpdates(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, DefaultLanguage, store.Language())

	store.SetLanguage("en")
	assert.Equal(t, "en", store.Language())

	store.SetLanguage("")
	assert.Equal(t, DefaultLanguage, store.Language())
}

func TestInstallIDGeneratedOncePersisted(t *testing.T) {
	persister := &MemoryPersister{}

	first := NewStore(persister, zerolog.Nop())
	require.NotEmpty(t, first.InstallID())

	second := NewStore(persister, zerolog.Nop())
	assert.Equal(t, first.InstallID(), second.InstallID())
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	persister := &MemoryPersister{FailSaves: true}
	store := NewStore(persister, zerolog.Nop())

	store.AddTeam(81, "FC Barcelona", "")

	// In-memory state still reflects the change for the process lifetime.
	assert.True(t, store.IsTeamSelected(81))
	assert.Equal(t, 1, store.TotalSelections())
}

func TestMutationsPersistSynchronously(t *testing.T) {
	store, persister := newTestStore(t)

	store.AddTeam(81, "FC Barcelona", "")

	reloaded := NewStore(persister, zerolog.Nop())
	assert.True(t, reloaded.IsTeamSelected(81))
}
