package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/pkg/errors"
)

const codeforcesBaseURL = "https://codeforces.com/api"

type CodeforcesSource struct {
	baseURL string
	client  *http.Client
}

func NewCodeforcesSource() *CodeforcesSource {
	return &CodeforcesSource{
		baseURL: codeforcesBaseURL,
		client:  http.DefaultClient,
	}
}

// NewCodeforcesSourceOf 测试或者私有部署时指定地址
func NewCodeforcesSourceOf(baseURL string) *CodeforcesSource {
	return &CodeforcesSource{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

func (s *CodeforcesSource) Platform() domain.Platform {
	return domain.PlatformCodeforces
}

func (s *CodeforcesSource) Fetch(ctx context.Context) ([]Contest, error) {
	var res cfResult
	err := httpx.NewRequest(ctx, http.MethodGet, s.baseURL+"/contest.list").
		Client(s.client).Do().JSONScan(&res)
	if err != nil {
		return nil, errors.Wrap(err, "请求 Codeforces contest.list 失败")
	}
	if res.Status != "OK" {
		return nil, fmt.Errorf("codeforces 响应异常: %s", res.Comment)
	}
	contests := make([]Contest, 0, len(res.Result))
	for _, c := range res.Result {
		contests = append(contests, Contest{
			Title:       c.Name,
			Platform:    domain.PlatformCodeforces,
			StartSec:    c.StartTimeSeconds,
			DurationSec: c.DurationSeconds,
			Link:        fmt.Sprintf("https://codeforces.com/contest/%d", c.ID),
			Historical:  c.Phase == "FINISHED",
		})
	}
	return contests, nil
}

type cfResult struct {
	Status  string      `json:"status"`
	Comment string      `json:"comment"`
	Result  []cfContest `json:"result"`
}

type cfContest struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	DurationSeconds  int64  `json:"durationSeconds"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
}
