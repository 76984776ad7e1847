package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeforcesSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contest.list", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "status": "OK",
  "result": [
    {
      "id": 1900,
      "name": "Codeforces Round 900",
      "phase": "BEFORE",
      "durationSeconds": 7200,
      "startTimeSeconds": 1700000000
    },
    {
      "id": 1899,
      "name": "Codeforces Round 899",
      "phase": "FINISHED",
      "durationSeconds": 8100,
      "startTimeSeconds": 1690000000
    }
  ]
}`))
	}))
	defer srv.Close()

	src := NewCodeforcesSourceOf(srv.URL)
	assert.Equal(t, domain.PlatformCodeforces, src.Platform())
	contests, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Contest{
		{
			Title:       "Codeforces Round 900",
			Platform:    domain.PlatformCodeforces,
			StartSec:    1700000000,
			DurationSec: 7200,
			Link:        "https://codeforces.com/contest/1900",
			Historical:  false,
		},
		{
			Title:       "Codeforces Round 899",
			Platform:    domain.PlatformCodeforces,
			StartSec:    1690000000,
			DurationSec: 8100,
			Link:        "https://codeforces.com/contest/1899",
			Historical:  true,
		},
	}, contests)
}

func TestCodeforcesSource_Fetch_statusFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "FAILED", "comment": "limit exceeded"}`))
	}))
	defer srv.Close()

	src := NewCodeforcesSourceOf(srv.URL)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit exceeded")
}
