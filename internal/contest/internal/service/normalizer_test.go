package service

import (
	"testing"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name    string
		raw     source.Contest
		want    domain.Contest
		wantErr bool
	}{
		{
			name: "秒级时间戳加秒级时长",
			raw: source.Contest{
				Title:       "Codeforces Round 900",
				Platform:    domain.PlatformCodeforces,
				StartSec:    1_700_000_000,
				DurationSec: 7200,
				Link:        "https://codeforces.com/contest/1900",
			},
			want: domain.Contest{
				Title:     "Codeforces Round 900",
				Platform:  domain.PlatformCodeforces,
				StartTime: 1_700_000_000_000,
				Duration:  120,
				Link:      "https://codeforces.com/contest/1900",
				Status:    domain.StatusUpcoming,
			},
		},
		{
			name: "ISO 时间加字符串分钟时长",
			raw: source.Contest{
				Title:       "Starters 100",
				Platform:    domain.PlatformCodeChef,
				StartISO:    "2024-03-01T14:30:00Z",
				DurationRaw: "180",
				Link:        "https://www.codechef.com/START100",
			},
			want: domain.Contest{
				Title:     "Starters 100",
				Platform:  domain.PlatformCodeChef,
				StartTime: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC).UnixMilli(),
				Duration:  180,
				Link:      "https://www.codechef.com/START100",
				Status:    domain.StatusUpcoming,
			},
		},
		{
			name: "带时区的 ISO 时间换算成 UTC",
			raw: source.Contest{
				Title:       "Starters 101",
				Platform:    domain.PlatformCodeChef,
				StartISO:    "2024-03-01T20:00:00+05:30",
				DurationRaw: "120",
			},
			want: domain.Contest{
				Title:     "Starters 101",
				Platform:  domain.PlatformCodeChef,
				StartTime: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC).UnixMilli(),
				Duration:  120,
				Status:    domain.StatusUpcoming,
			},
		},
		{
			name: "历史比赛直接标成 past",
			raw: source.Contest{
				Title:       "Weekly Contest 1",
				Platform:    domain.PlatformLeetCode,
				StartSec:    1_500_000_000,
				DurationSec: 5400,
				Historical:  true,
			},
			want: domain.Contest{
				Title:     "Weekly Contest 1",
				Platform:  domain.PlatformLeetCode,
				StartTime: 1_500_000_000_000,
				Duration:  90,
				Status:    domain.StatusPast,
			},
		},
		{
			name: "标题两侧空白会被裁掉",
			raw: source.Contest{
				Title:       "  Weekly Contest 2  ",
				Platform:    domain.PlatformLeetCode,
				StartSec:    1_500_000_000,
				DurationSec: 5400,
			},
			want: domain.Contest{
				Title:     "Weekly Contest 2",
				Platform:  domain.PlatformLeetCode,
				StartTime: 1_500_000_000_000,
				Duration:  90,
				Status:    domain.StatusUpcoming,
			},
		},
		{
			name: "缺标题",
			raw: source.Contest{
				Platform:    domain.PlatformCodeforces,
				StartSec:    1_700_000_000,
				DurationSec: 7200,
			},
			wantErr: true,
		},
		{
			name: "缺开始时间",
			raw: source.Contest{
				Title:       "No Start",
				Platform:    domain.PlatformCodeforces,
				DurationSec: 7200,
			},
			wantErr: true,
		},
		{
			name: "开始时间格式坏掉",
			raw: source.Contest{
				Title:       "Bad Start",
				Platform:    domain.PlatformCodeChef,
				StartISO:    "03/01/2024 14:30",
				DurationRaw: "120",
			},
			wantErr: true,
		},
		{
			name: "缺时长",
			raw: source.Contest{
				Title:    "No Duration",
				Platform: domain.PlatformCodeforces,
				StartSec: 1_700_000_000,
			},
			wantErr: true,
		},
		{
			name: "时长不是数字",
			raw: source.Contest{
				Title:       "Bad Duration",
				Platform:    domain.PlatformCodeChef,
				StartISO:    "2024-03-01T14:30:00Z",
				DurationRaw: "three hours",
			},
			wantErr: true,
		},
		{
			name: "时长是负数",
			raw: source.Contest{
				Title:       "Negative Duration",
				Platform:    domain.PlatformCodeChef,
				StartISO:    "2024-03-01T14:30:00Z",
				DurationRaw: "-5",
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
