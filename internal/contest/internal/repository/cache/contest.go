package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrActiveListNotFound = errors.New("活跃比赛列表缓存未命中")

// 活跃列表变化频繁（摄取、状态刷新都会动它），过期时间不宜太长
const activeExpiration = time.Minute

type ContestCache interface {
	GetActive(ctx context.Context) ([]domain.Contest, error)
	SetActive(ctx context.Context, contests []domain.Contest) error
	DelActive(ctx context.Context) error
}

type ContestECache struct {
	ec ecache.Cache
}

func NewContestECache(ec ecache.Cache) ContestCache {
	return &ContestECache{
		ec: &ecache.NamespaceCache{
			Namespace: "contest:",
			C:         ec,
		},
	}
}

func (c *ContestECache) GetActive(ctx context.Context) ([]domain.Contest, error) {
	val := c.ec.Get(ctx, c.activeKey())
	if val.KeyNotFound() {
		return nil, ErrActiveListNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询活跃比赛缓存出错")
	}
	var res []domain.Contest
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化活跃比赛列表失败")
	}
	return res, nil
}

func (c *ContestECache) SetActive(ctx context.Context, contests []domain.Contest) error {
	data, err := json.Marshal(contests)
	if err != nil {
		return errors.Wrap(err, "序列化活跃比赛列表失败")
	}
	return c.ec.Set(ctx, c.activeKey(), string(data), activeExpiration)
}

func (c *ContestECache) DelActive(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, c.activeKey())
	return err
}

// 注意 Namespace 设置
func (c *ContestECache) activeKey() string {
	return "list:active"
}
