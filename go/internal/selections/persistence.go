package selections

// Record is the full persisted selection state of one installation.
type Record struct {
	InstallID          string         `json:"install_id"`
	TeamIDs            []int          `json:"team_ids"`
	CompetitionIDs     []int          `json:"competition_ids"`
	TeamNames          map[int]string `json:"team_names"`
	CompetitionNames   map[int]string `json:"competition_names"`
	TeamCrests         map[int]string `json:"team_crests"`
	CompetitionEmblems map[int]string `json:"competition_emblems"`
	OnboardingComplete bool           `json:"onboarding_complete"`
	APIToken           string         `json:"api_token"`
	Language           string         `json:"language"`
}

// Persister loads and saves the selection record. Load reports whether a
// prior record existed. The storage backend behind it is swappable without
// touching the store's logic.
type Persister interface {
	Load() (Record, bool, error)
	Save(Record) error
}

func cloneRecord(rec Record) Record {
	out := rec
	out.TeamIDs = append([]int(nil), rec.TeamIDs...)
	out.CompetitionIDs = append([]int(nil), rec.CompetitionIDs...)
	out.TeamNames = cloneMap(rec.TeamNames)
	out.CompetitionNames = cloneMap(rec.CompetitionNames)
	out.TeamCrests = cloneMap(rec.TeamCrests)
	out.CompetitionEmblems = cloneMap(rec.CompetitionEmblems)

	return out
}

func cloneMap(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
