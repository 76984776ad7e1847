package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeetCodeSource_Fetch(t *testing.T) {
	// 归档一共 12 条，按每页 10 条要拉两页，第三页为空
	srv := newLeetCodeServer(t, 12)
	defer srv.Close()

	src := NewLeetCodeSourceOf(srv.URL, 60)
	assert.Equal(t, domain.PlatformLeetCode, src.Platform())
	contests, err := src.Fetch(context.Background())
	require.NoError(t, err)
	// 2 条未开始 + 12 条历史
	require.Len(t, contests, 14)
	assert.Equal(t, Contest{
		Title:       "Weekly Contest 400",
		Platform:    domain.PlatformLeetCode,
		StartSec:    1700000000,
		DurationSec: 5400,
		Link:        "https://leetcode.com/contest/weekly-contest-400",
		Historical:  false,
	}, contests[0])
	// 历史接口不带时长，落到默认的 90 分钟
	assert.Equal(t, int64(90*60), contests[2].DurationSec)
	assert.True(t, contests[2].Historical)
}

func TestLeetCodeSource_Fetch_pageCeiling(t *testing.T) {
	// 归档远多于上限，拉取必须在 maxPages 处停下
	srv := newLeetCodeServer(t, 1000)
	defer srv.Close()

	src := NewLeetCodeSourceOf(srv.URL, 3)
	contests, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 2+3*leetcodePageSize)
}

func TestLeetCodeSource_Fetch_graphqlError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"errors": [{"message": "rate limited"}]}`))
	}))
	defer srv.Close()

	src := NewLeetCodeSourceOf(srv.URL, 60)
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

// newLeetCodeServer 模拟 GraphQL 端点：两条未开始比赛加 pastTotal 条历史比赛的归档
func newLeetCodeServer(t *testing.T, pastTotal int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(q.Query, "topTwoContests") {
			_, _ = w.Write([]byte(`{
  "data": {
    "topTwoContests": [
      {"title": "Weekly Contest 400", "titleSlug": "weekly-contest-400", "startTime": 1700000000, "duration": 5400},
      {"title": "Biweekly Contest 120", "titleSlug": "biweekly-contest-120", "startTime": 1700100000, "duration": 5400}
    ]
  }
}`))
			return
		}
		pageNo := int(q.Variables["pageNo"].(float64))
		numPerPage := int(q.Variables["numPerPage"].(float64))
		var items []string
		for i := (pageNo-1)*numPerPage + 1; i <= pageNo*numPerPage && i <= pastTotal; i++ {
			items = append(items, fmt.Sprintf(
				`{"title": "Weekly Contest %d", "titleSlug": "weekly-contest-%d", "startTime": %d, "duration": 0}`,
				i, i, 1600000000+i))
		}
		_, _ = fmt.Fprintf(w, `{"data": {"pastContests": {"data": [%s]}}}`, strings.Join(items, ","))
	}))
}
