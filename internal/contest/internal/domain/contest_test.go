package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContest_EndTime(t *testing.T) {
	c := Contest{
		StartTime: 1_700_000_000_000,
		Duration:  120,
	}
	assert.Equal(t, int64(1_700_000_000_000+120*60*1000), c.EndTime())
}

func TestContest_StatusAt(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Contest{
		StartTime: start.UnixMilli(),
		// 两个小时
		Duration: 120,
	}
	testCases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{
			name: "开始之前",
			now:  start.Add(-time.Hour),
			want: StatusUpcoming,
		},
		{
			name: "恰好开始",
			now:  start,
			want: StatusOngoing,
		},
		{
			name: "进行中",
			now:  start.Add(time.Hour),
			want: StatusOngoing,
		},
		{
			name: "恰好结束",
			now:  start.Add(2 * time.Hour),
			want: StatusPast,
		},
		{
			name: "结束之后",
			now:  start.Add(3 * time.Hour),
			want: StatusPast,
		},
		{
			// 停机错过了 ongoing 窗口，一次推导也要直接得出 past
			name: "停机之后补扫",
			now:  start.Add(24 * time.Hour),
			want: StatusPast,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.StatusAt(tc.now))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusUpcoming.Terminal())
	assert.False(t, StatusOngoing.Terminal())
	assert.True(t, StatusPast.Terminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "upcoming", StatusUpcoming.String())
	assert.Equal(t, "ongoing", StatusOngoing.String())
	assert.Equal(t, "past", StatusPast.String())
	assert.Equal(t, "unknown(0)", StatusUnknown.String())
}
