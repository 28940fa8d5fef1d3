package footballdata

const (
	// Base URL
	BaseURL = "https://api.football-data.org/v4"

	// API Endpoints
	CompetitionsEndpoint = "/competitions"
	TeamsEndpoint        = "/teams"
	MatchesEndpoint      = "/matches"
	PersonsEndpoint      = "/persons"

	// Headers
	AuthTokenHeader = "X-Auth-Token"

	// PlaceholderToken is sent when no credential is configured. The server
	// rejects it with 403; the client itself must keep working.
	PlaceholderToken = "YOUR_API_KEY"
)
