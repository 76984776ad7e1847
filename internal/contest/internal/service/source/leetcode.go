package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/pkg/errors"
)

const (
	leetcodeBaseURL = "https://leetcode.com/graphql/"
	// LeetCode 周赛/双周赛默认 90 分钟，历史接口不返回时长
	leetcodeDefaultDurationSec = 90 * 60
	leetcodePageSize           = 10
)

type LeetCodeSource struct {
	baseURL string
	client  *http.Client
	// maxPages 归档分页的硬上限，防止对方分页契约失效时拉取不终止
	maxPages int
}

func NewLeetCodeSource(maxPages int) *LeetCodeSource {
	return &LeetCodeSource{
		baseURL:  leetcodeBaseURL,
		client:   http.DefaultClient,
		maxPages: maxPages,
	}
}

func NewLeetCodeSourceOf(baseURL string, maxPages int) *LeetCodeSource {
	return &LeetCodeSource{
		baseURL:  baseURL,
		client:   http.DefaultClient,
		maxPages: maxPages,
	}
}

func (s *LeetCodeSource) Platform() domain.Platform {
	return domain.PlatformLeetCode
}

func (s *LeetCodeSource) Fetch(ctx context.Context) ([]Contest, error) {
	upcoming, err := s.fetchUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	past, err := s.fetchPast(ctx)
	if err != nil {
		return nil, err
	}
	return append(upcoming, past...), nil
}

func (s *LeetCodeSource) fetchUpcoming(ctx context.Context) ([]Contest, error) {
	var res struct {
		Data struct {
			TopTwoContests []lcContest `json:"topTwoContests"`
		} `json:"data"`
	}
	err := s.query(ctx, lcQuery{
		Query: `query {
  topTwoContests {
    title
    titleSlug
    startTime
    duration
  }
}`,
	}, &res)
	if err != nil {
		return nil, errors.Wrap(err, "拉取 LeetCode 未开始比赛失败")
	}
	return s.toRaws(res.Data.TopTwoContests, false), nil
}

func (s *LeetCodeSource) fetchPast(ctx context.Context) ([]Contest, error) {
	var contests []Contest
	// 归档接口按页拉取，拉到空页或者到达页数上限为止
	for pageNo := 1; pageNo <= s.maxPages; pageNo++ {
		var res struct {
			Data struct {
				PastContests struct {
					Data []lcContest `json:"data"`
				} `json:"pastContests"`
			} `json:"data"`
		}
		err := s.query(ctx, lcQuery{
			Query: `query pastContests($pageNo: Int, $numPerPage: Int) {
  pastContests(pageNo: $pageNo, numPerPage: $numPerPage) {
    data {
      title
      titleSlug
      startTime
      duration
    }
  }
}`,
			Variables: map[string]any{
				"pageNo":     pageNo,
				"numPerPage": leetcodePageSize,
			},
		}, &res)
		if err != nil {
			return nil, errors.Wrapf(err, "拉取 LeetCode 历史比赛第 %d 页失败", pageNo)
		}
		page := res.Data.PastContests.Data
		if len(page) == 0 {
			break
		}
		contests = append(contests, s.toRaws(page, true)...)
	}
	return contests, nil
}

func (s *LeetCodeSource) query(ctx context.Context, q lcQuery, res any) error {
	body, err := json.Marshal(q)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com/contest/")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leetcode 响应码异常: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("leetcode graphql 出错: %s", envelope.Errors[0].Message)
	}
	return json.Unmarshal(data, res)
}

func (s *LeetCodeSource) toRaws(contests []lcContest, historical bool) []Contest {
	res := make([]Contest, 0, len(contests))
	for _, c := range contests {
		duration := c.Duration
		if duration <= 0 {
			duration = leetcodeDefaultDurationSec
		}
		res = append(res, Contest{
			Title:       c.Title,
			Platform:    domain.PlatformLeetCode,
			StartSec:    c.StartTime,
			DurationSec: duration,
			Link:        "https://leetcode.com/contest/" + c.TitleSlug,
			Historical:  historical,
		})
	}
	return res
}

type lcQuery struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type lcContest struct {
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	StartTime int64  `json:"startTime"`
	Duration  int64  `json:"duration"`
}
