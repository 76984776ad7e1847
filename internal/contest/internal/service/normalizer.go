package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service/source"
)

// Normalize 把来源原始记录换算成统一口径：
// 开始时间换算成毫秒级 UTC 时间戳，时长换算成分钟。
// 换不动的记录返回错误，由调用方丢弃并记日志，不会让整个批次失败。
// 初始状态只取 upcoming 或 past 两个保守值，权威状态由状态刷新任务推导。
func Normalize(raw source.Contest) (domain.Contest, error) {
	if strings.TrimSpace(raw.Title) == "" {
		return domain.Contest{}, fmt.Errorf("缺少标题: %+v", raw)
	}
	startTime, err := normalizeStartTime(raw)
	if err != nil {
		return domain.Contest{}, err
	}
	duration, err := normalizeDuration(raw)
	if err != nil {
		return domain.Contest{}, err
	}
	status := domain.StatusUpcoming
	if raw.Historical {
		status = domain.StatusPast
	}
	return domain.Contest{
		Title:     strings.TrimSpace(raw.Title),
		Platform:  raw.Platform,
		StartTime: startTime,
		Duration:  duration,
		Link:      raw.Link,
		Status:    status,
	}, nil
}

func normalizeStartTime(raw source.Contest) (int64, error) {
	if raw.StartSec > 0 {
		return raw.StartSec * 1000, nil
	}
	if raw.StartISO != "" {
		t, err := time.Parse(time.RFC3339, raw.StartISO)
		if err != nil {
			return 0, fmt.Errorf("开始时间解析失败 %q: %w", raw.StartISO, err)
		}
		return t.UTC().UnixMilli(), nil
	}
	return 0, fmt.Errorf("缺少开始时间: %s/%s", raw.Platform, raw.Title)
}

func normalizeDuration(raw source.Contest) (int64, error) {
	if raw.DurationSec > 0 {
		return raw.DurationSec / 60, nil
	}
	if raw.DurationRaw != "" {
		minutes, err := strconv.ParseInt(strings.TrimSpace(raw.DurationRaw), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("时长解析失败 %q: %w", raw.DurationRaw, err)
		}
		if minutes <= 0 {
			return 0, fmt.Errorf("时长不合法 %q", raw.DurationRaw)
		}
		return minutes, nil
	}
	return 0, fmt.Errorf("缺少时长: %s/%s", raw.Platform, raw.Title)
}
