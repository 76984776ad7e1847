package domain

// SourceReport 单个来源在一轮同步里的结果。
// 某个来源失败不影响其它来源，所以失败信息记录在这里而不是整轮的 error 上。
type SourceReport struct {
	Platform Platform
	// Fetched 来源返回的原始记录数
	Fetched int
	// Dropped 规整阶段丢弃的记录数（缺字段、时间解析失败）
	Dropped int
	// Upserted 成功写入存储的记录数
	Upserted int
	// WriteFailed 写入失败但没有中断批次的记录数
	WriteFailed int
	// Error 来源级失败（网络、超时、响应不合法），为空表示来源成功
	Error string
}

func (r SourceReport) Success() bool {
	return r.Error == ""
}

// SyncReport 一轮同步的汇总
type SyncReport struct {
	RunID   string
	Sources []SourceReport
}

// FailedPlatforms 本轮整体失败的来源
func (r SyncReport) FailedPlatforms() []Platform {
	var res []Platform
	for _, src := range r.Sources {
		if !src.Success() {
			res = append(res, src.Platform)
		}
	}
	return res
}

// Freshness 某个平台数据的新鲜度信号，
// LastUpdated 是该平台比赛记录最近一次成功写入的毫秒时间戳
type Freshness struct {
	Platform    Platform
	LastUpdated int64
}
