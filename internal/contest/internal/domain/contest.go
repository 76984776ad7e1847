package domain

import (
	"fmt"
	"time"
)

// Platform 比赛来源平台
type Platform string

const (
	PlatformCodeforces Platform = "Codeforces"
	PlatformCodeChef   Platform = "CodeChef"
	PlatformLeetCode   Platform = "LeetCode"
)

func (p Platform) String() string {
	return string(p)
}

// Status 比赛状态，数值越大越靠后。
// 状态只能向前推进：upcoming -> ongoing -> past，
// 摄取侧最多写入一个不超过已存状态的初始值，推进由状态刷新任务负责。
type Status uint8

const (
	StatusUnknown  Status = 0
	StatusUpcoming Status = 1
	StatusOngoing  Status = 2
	StatusPast     Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case StatusUpcoming:
		return "upcoming"
	case StatusOngoing:
		return "ongoing"
	case StatusPast:
		return "past"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Terminal past 是终态，不会再被状态刷新任务扫描
func (s Status) Terminal() bool {
	return s == StatusPast
}

// Contest 聚合后的比赛，(Title, Platform) 是唯一标识
type Contest struct {
	ID       int64
	Title    string
	Platform Platform
	// StartTime 毫秒时间戳，UTC
	StartTime int64
	// Duration 比赛时长，单位分钟
	Duration int64
	Link     string
	Status   Status
	// SolutionLink 题解链接，由协作方写入，摄取和状态刷新都不会碰它
	SolutionLink string
	Ctime        int64
	Utime        int64
}

// EndTime 比赛结束时间，毫秒时间戳
func (c Contest) EndTime() int64 {
	return c.StartTime + c.Duration*time.Minute.Milliseconds()
}

// StatusAt 按照墙上时钟独立推导状态。
// 每次都全量求值，所以停机之后一次扫描也能直接从 upcoming 跳到 past。
func (c Contest) StatusAt(now time.Time) Status {
	nowMilli := now.UnixMilli()
	switch {
	case nowMilli >= c.EndTime():
		return StatusPast
	case nowMilli >= c.StartTime:
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}
