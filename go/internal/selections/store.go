package selections

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// MaxSelections caps followed teams and competitions combined.
	MaxSelections = 10

	// DefaultLanguage is applied when no language was ever chosen.
	DefaultLanguage = "zh"

	// fallbackName keeps the id -> display name invariant when a caller
	// passes an empty name.
	fallbackName = "Unknown"
)

// Store is the process-wide set of followed teams and competitions, plus the
// onboarding flag, API credential and UI language. Every mutation persists
// the full record synchronously before returning. Persistence is best-effort:
// a failed write is logged and swallowed, and the in-memory state stays
// authoritative for the rest of the process lifetime.
type Store struct {
	mu      sync.Mutex
	rec     Record
	persist Persister
	log     zerolog.Logger
}

// NewStore loads prior persisted state through p. When nothing was persisted
// yet (or the load fails), the store starts in first-run state: empty lists,
// onboarding incomplete, a freshly generated installation id.
func NewStore(p Persister, logger zerolog.Logger) *Store {
	rec, found, err := p.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load selections, starting empty")
		rec = Record{}
		found = false
	}

	s := &Store{
		rec:     rec,
		persist: p,
		log:     logger,
	}
	s.normalize()

	if !found {
		s.saveLocked()
	}

	return s
}

func (s *Store) normalize() {
	if s.rec.TeamNames == nil {
		s.rec.TeamNames = make(map[int]string)
	}
	if s.rec.CompetitionNames == nil {
		s.rec.CompetitionNames = make(map[int]string)
	}
	if s.rec.TeamCrests == nil {
		s.rec.TeamCrests = make(map[int]string)
	}
	if s.rec.CompetitionEmblems == nil {
		s.rec.CompetitionEmblems = make(map[int]string)
	}
	if s.rec.Language == "" {
		s.rec.Language = DefaultLanguage
	}
	if s.rec.InstallID == "" {
		s.rec.InstallID = uuid.NewString()
	}
}

func (s *Store) saveLocked() {
	if err := s.persist.Save(cloneRecord(s.rec)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist selections")
	}
}

// AddTeam follows a team. No-op when the team is already followed or the
// combined capacity is reached.
func (s *Store) AddTeam(id int, name, crest string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canAddLocked() || containsID(s.rec.TeamIDs, id) {
		return
	}

	if name == "" {
		name = fallbackName
	}

	s.rec.TeamIDs = append(s.rec.TeamIDs, id)
	s.rec.TeamNames[id] = name
	if crest != "" {
		s.rec.TeamCrests[id] = crest
	}

	s.saveLocked()
}

// RemoveTeam unfollows a team and drops its cached name and crest. No-op when
// the team is not followed.
func (s *Store) RemoveTeam(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsID(s.rec.TeamIDs, id) {
		return
	}

	s.rec.TeamIDs = removeID(s.rec.TeamIDs, id)
	delete(s.rec.TeamNames, id)
	delete(s.rec.TeamCrests, id)

	s.saveLocked()
}

// AddCompetition follows a competition. No-op when already followed or at
// capacity.
func (s *Store) AddCompetition(id int, name, emblem string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canAddLocked() || containsID(s.rec.CompetitionIDs, id) {
		return
	}

	if name == "" {
		name = fallbackName
	}

	s.rec.CompetitionIDs = append(s.rec.CompetitionIDs, id)
	s.rec.CompetitionNames[id] = name
	if emblem != "" {
		s.rec.CompetitionEmblems[id] = emblem
	}

	s.saveLocked()
}

// RemoveCompetition unfollows a competition and drops its cached name and
// emblem.
func (s *Store) RemoveCompetition(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsID(s.rec.CompetitionIDs, id) {
		return
	}

	s.rec.CompetitionIDs = removeID(s.rec.CompetitionIDs, id)
	delete(s.rec.CompetitionNames, id)
	delete(s.rec.CompetitionEmblems, id)

	s.saveLocked()
}

// IsTeamSelected reports whether the team is followed.
func (s *Store) IsTeamSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return containsID(s.rec.TeamIDs, id)
}

// IsCompetitionSelected reports whether the competition is followed.
func (s *Store) IsCompetitionSelected(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return containsID(s.rec.CompetitionIDs, id)
}

// TotalSelections is the combined count of followed teams and competitions.
func (s *Store) TotalSelections() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalLocked()
}

// CanAddMore reports whether another team or competition may be followed.
func (s *Store) CanAddMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.canAddLocked()
}

// RemainingSlots is how many more selections fit.
func (s *Store) RemainingSlots() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := MaxSelections - s.totalLocked()
	if remaining < 0 {
		remaining = 0
	}

	return remaining
}

// FollowedTeamIDs returns the followed team ids in insertion order.
func (s *Store) FollowedTeamIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int(nil), s.rec.TeamIDs...)
}

// FollowedCompetitionIDs returns the followed competition ids in insertion
// order.
func (s *Store) FollowedCompetitionIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int(nil), s.rec.CompetitionIDs...)
}

// TeamName returns the cached display name of a followed team.
func (s *Store) TeamName(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.rec.TeamNames[id]

	return name, ok
}

// CompetitionName returns the cached display name of a followed competition.
func (s *Store) CompetitionName(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.rec.CompetitionNames[id]

	return name, ok
}

// TeamCrest returns the cached crest URL of a followed team.
func (s *Store) TeamCrest(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	crest, ok := s.rec.TeamCrests[id]

	return crest, ok
}

// CompetitionEmblem returns the cached emblem URL of a followed competition.
func (s *Store) CompetitionEmblem(id int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emblem, ok := s.rec.CompetitionEmblems[id]

	return emblem, ok
}

// CompleteOnboarding marks onboarding as done.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec.OnboardingComplete = true
	s.saveLocked()
}

// HasCompletedOnboarding reports whether onboarding finished.
func (s *Store) HasCompletedOnboarding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.OnboardingComplete
}

// ResetAll clears all selections and the onboarding flag, returning the store
// to first-run state. The credential, language and installation id survive.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec.TeamIDs = nil
	s.rec.CompetitionIDs = nil
	s.rec.TeamNames = make(map[int]string)
	s.rec.CompetitionNames = make(map[int]string)
	s.rec.TeamCrests = make(map[int]string)
	s.rec.CompetitionEmblems = make(map[int]string)
	s.rec.OnboardingComplete = false

	s.saveLocked()
}

// APIToken returns the stored API credential, empty when unset.
func (s *Store) APIToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.APIToken
}

// SetAPIToken stores the API credential and persists it immediately.
func (s *Store) SetAPIToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec.APIToken = token
	s.saveLocked()
}

// Language returns the chosen UI language code.
func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.Language
}

// SetLanguage stores the UI language code.
func (s *Store) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lang == "" {
		lang = DefaultLanguage
	}

	s.rec.Language = lang
	s.saveLocked()
}

// InstallID is the stable identifier generated on first run.
func (s *Store) InstallID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rec.InstallID
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneRecord(s.rec)
}

func (s *Store) totalLocked() int {
	return len(s.rec.TeamIDs) + len(s.rec.CompetitionIDs)
}

func (s *Store) canAddLocked() bool {
	return s.totalLocked() < MaxSelections
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
