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

func TestCodeChefSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list/contests/all", r.URL.Path)
		assert.Equal(t, "START", r.URL.Query().Get("sort_by"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "future_contests": [
    {
      "contest_code": "START100",
      "contest_name": "Starters 100",
      "contest_start_date_iso": "2024-03-06T20:00:00+05:30",
      "contest_duration": "120"
    }
  ],
  "past_contests": [
    {
      "contest_code": "START99",
      "contest_name": "Starters 99",
      "contest_start_date_iso": "2024-02-28T20:00:00+05:30",
      "contest_duration": "180"
    }
  ]
}`))
	}))
	defer srv.Close()

	src := NewCodeChefSourceOf(srv.URL)
	assert.Equal(t, domain.PlatformCodeChef, src.Platform())
	contests, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Contest{
		{
			Title:       "Starters 100",
			Platform:    domain.PlatformCodeChef,
			StartISO:    "2024-03-06T20:00:00+05:30",
			DurationRaw: "120",
			Link:        "https://www.codechef.com/START100",
			Historical:  false,
		},
		{
			Title:       "Starters 99",
			Platform:    domain.PlatformCodeChef,
			StartISO:    "2024-02-28T20:00:00+05:30",
			DurationRaw: "180",
			Link:        "https://www.codechef.com/START99",
			Historical:  true,
		},
	}, contests)
}

func TestCodeChefSource_Fetch_emptyLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"future_contests": [], "past_contests": []}`))
	}))
	defer srv.Close()

	src := NewCodeChefSourceOf(srv.URL)
	contests, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, contests)
}
