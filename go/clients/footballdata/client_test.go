package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, clock clockwork.Clock, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient("test-token", WithBaseURL(server.URL), WithClock(clock))
}

func TestPacingSpacesConcurrentRequests(t *testing.T) {
	fc := clockwork.NewFakeClock()

	var mu sync.Mutex
	var issued []time.Time
	arrived := make(chan struct{}, 3)

	client := newTestClient(t, fc, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		issued = append(issued, fc.Now())
		mu.Unlock()
		arrived <- struct{}{}
		w.Write([]byte(`{"competitions":[]}`))
	})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Competitions(context.Background())
			assert.NoError(t, err)
		}()
	}

	// The first caller dispatches immediately; the other two queue behind
	// the pacing gate and are released one clock step at a time.
	<-arrived
	fc.BlockUntil(2)
	fc.Advance(MinRequestInterval)
	<-arrived
	fc.BlockUntil(1)
	fc.Advance(MinRequestInterval)
	<-arrived
	wg.Wait()

	require.Len(t, issued, 3)
	sort.Slice(issued, func(i, j int) bool { return issued[i].Before(issued[j]) })
	for i := 1; i < len(issued); i++ {
		gap := issued[i].Sub(issued[i-1])
		assert.GreaterOrEqual(t, gap, MinRequestInterval, "requests %d and %d issued too close together", i-1, i)
	}
}

func TestPacingWaitHonorsCancellation(t *testing.T) {
	fc := clockwork.NewFakeClock()

	client := newTestClient(t, fc, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"competitions":[]}`))
	})

	_, err := client.Competitions(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Competitions(ctx)
		done <- err
	}()

	fc.BlockUntil(1)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled fetch never returned")
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"unauthorized", http.StatusForbidden, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			})

			_, err := client.Competitions(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerErrorCarriesStatusCode(t *testing.T) {
	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Competitions(context.Background())

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
}

func TestDecodeErrorOnMalformedBody(t *testing.T) {
	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"competitions": "not a list"`))
	})

	_, err := client.Competitions(context.Background())

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestTransportFailureIsInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient("test-token", WithBaseURL(server.URL), WithClock(clockwork.NewFakeClock()))

	_, err := client.Competitions(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAuthHeaderAttached(t *testing.T) {
	var gotToken, gotAccept string

	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(AuthTokenHeader)
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"competitions":[]}`))
	})

	_, err := client.Competitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "application/json", gotAccept)
}

func TestEmptyTokenFallsBackToPlaceholder(t *testing.T) {
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get(AuthTokenHeader)
		w.Write([]byte(`{"competitions":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("", WithBaseURL(server.URL), WithClock(clockwork.NewFakeClock()))

	_, err := client.Competitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PlaceholderToken, gotToken)
}

func TestQueryParametersForwarded(t *testing.T) {
	var gotPath, gotQuery string

	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"matches":[]}`))
	})

	_, err := client.CompetitionMatches(context.Background(), 2021, CompetitionMatchOptions{
		DateFrom: "2026-08-01",
		DateTo:   "2026-09-30",
		Matchday: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "/competitions/2021/matches", gotPath)
	assert.Contains(t, gotQuery, "dateFrom=2026-08-01")
	assert.Contains(t, gotQuery, "dateTo=2026-09-30")
	assert.Contains(t, gotQuery, "matchday=3")
}

func TestTeamMatchesDefaultLimit(t *testing.T) {
	var gotQuery string

	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"matches":[]}`))
	})

	_, err := client.TeamMatches(context.Background(), 64, TeamMatchOptions{})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "limit=50")
}

func TestUnknownFieldsIgnored(t *testing.T) {
	client := newTestClient(t, clockwork.NewFakeClock(), func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"filters": {"season": 2026},
			"competitions": [
				{"id": 2021, "name": "Premier League", "code": "PL", "somethingNew": true}
			]
		}`))
	})

	comps, err := client.Competitions(context.Background())
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, 2021, comps[0].ID)
	assert.Equal(t, "Premier League", comps[0].Name)
	require.NotNil(t, comps[0].Code)
	assert.Equal(t, "PL", *comps[0].Code)
	assert.Nil(t, comps[0].Emblem)
}
