package source

import (
	"context"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
)

// Source 单个外部平台的适配器。
// 各平台的接口形态差异（REST、GraphQL、分页）全部封装在实现内部，
// 实现之间不共享任何可变状态，失败也互不传染。
//
//go:generate mockgen -source=./type.go -destination=./mocks/source.mock.go -package=srcmocks Source
type Source interface {
	Platform() domain.Platform
	// Fetch 拉取该平台的全部比赛原始记录。
	// 返回空切片不算错误，单条记录的字段问题留给规整阶段处理。
	Fetch(ctx context.Context) ([]Contest, error)
}

// Contest 来源返回的原始记录，字段保留各平台自己的单位，
// 统一换算交给规整阶段。同一时间字段只会有一种表示被填上。
type Contest struct {
	Title    string
	Platform domain.Platform
	// StartSec 秒级时间戳（Codeforces、LeetCode）
	StartSec int64
	// StartISO ISO-8601 字符串（CodeChef）
	StartISO string
	// DurationSec 秒（Codeforces、LeetCode）
	DurationSec int64
	// DurationRaw 字符串形式的分钟数（CodeChef）
	DurationRaw string
	Link        string
	// Historical 来源明确标记为已结束。
	// 只作为初始状态的参考，权威状态由状态刷新任务推导
	Historical bool
}
