package web

import (
	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
)

type ContestVO struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	// StartTime 毫秒时间戳
	StartTime int64 `json:"startTime"`
	// Duration 分钟
	Duration     int64  `json:"duration"`
	Link         string `json:"link"`
	Status       string `json:"status"`
	SolutionLink string `json:"solutionLink,omitempty"`
}

func newContestVO(c domain.Contest) ContestVO {
	return ContestVO{
		ID:           c.ID,
		Title:        c.Title,
		Platform:     c.Platform.String(),
		StartTime:    c.StartTime,
		Duration:     c.Duration,
		Link:         c.Link,
		Status:       c.Status.String(),
		SolutionLink: c.SolutionLink,
	}
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListContestResp struct {
	Total int64       `json:"total"`
	List  []ContestVO `json:"list"`
}

type SaveSolutionLinkReq struct {
	ID   int64  `json:"id"`
	Link string `json:"link"`
}

type SyncReportVO struct {
	RunID   string           `json:"runId"`
	Sources []SourceReportVO `json:"sources"`
}

type SourceReportVO struct {
	Platform    string `json:"platform"`
	Fetched     int    `json:"fetched"`
	Dropped     int    `json:"dropped"`
	Upserted    int    `json:"upserted"`
	WriteFailed int    `json:"writeFailed"`
	Error       string `json:"error,omitempty"`
}

type FreshnessVO struct {
	Platform string `json:"platform"`
	// LastUpdated 毫秒时间戳
	LastUpdated int64 `json:"lastUpdated"`
}
