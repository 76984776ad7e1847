package source

import (
	"context"
	"net/http"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/pkg/errors"
)

const codechefBaseURL = "https://www.codechef.com/api"

type CodeChefSource struct {
	baseURL string
	client  *http.Client
}

func NewCodeChefSource() *CodeChefSource {
	return &CodeChefSource{
		baseURL: codechefBaseURL,
		client:  http.DefaultClient,
	}
}

func NewCodeChefSourceOf(baseURL string) *CodeChefSource {
	return &CodeChefSource{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

func (s *CodeChefSource) Platform() domain.Platform {
	return domain.PlatformCodeChef
}

func (s *CodeChefSource) Fetch(ctx context.Context) ([]Contest, error) {
	var res ccResult
	err := httpx.NewRequest(ctx, http.MethodGet, s.baseURL+"/list/contests/all").
		Client(s.client).
		AddParam("sort_by", "START").
		AddParam("sorting_order", "asc").
		AddParam("offset", "0").
		AddParam("mode", "all").
		Do().JSONScan(&res)
	if err != nil {
		return nil, errors.Wrap(err, "请求 CodeChef 比赛列表失败")
	}
	contests := make([]Contest, 0, len(res.FutureContests)+len(res.PastContests))
	for _, c := range res.FutureContests {
		contests = append(contests, s.toRaw(c, false))
	}
	for _, c := range res.PastContests {
		contests = append(contests, s.toRaw(c, true))
	}
	return contests, nil
}

func (s *CodeChefSource) toRaw(c ccContest, historical bool) Contest {
	return Contest{
		Title:       c.ContestName,
		Platform:    domain.PlatformCodeChef,
		StartISO:    c.ContestStartDateISO,
		DurationRaw: c.ContestDuration,
		Link:        "https://www.codechef.com/" + c.ContestCode,
		Historical:  historical,
	}
}

type ccResult struct {
	FutureContests []ccContest `json:"future_contests"`
	PastContests   []ccContest `json:"past_contests"`
}

type ccContest struct {
	ContestCode         string `json:"contest_code"`
	ContestName         string `json:"contest_name"`
	ContestStartDateISO string `json:"contest_start_date_iso"`
	// CodeChef 的时长是字符串形式的分钟数
	ContestDuration string `json:"contest_duration"`
}
