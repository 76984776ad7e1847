// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
)

// RefreshStatusJob 按墙上时钟推进比赛状态。
// 出错整轮放弃，状态保持原样，等下一轮排期重试；
// 长时间停机后第一轮也能直接把早该结束的比赛置为 past。
type RefreshStatusJob struct {
	svc     service.ContestService
	timeout time.Duration
}

func NewRefreshStatusJob(svc service.ContestService, timeout time.Duration) *RefreshStatusJob {
	return &RefreshStatusJob{svc: svc, timeout: timeout}
}

func (j *RefreshStatusJob) Name() string {
	return "RefreshStatusJob"
}

func (j *RefreshStatusJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	err := j.svc.RefreshStatuses(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("刷新比赛状态失败: %w", err)
	}
	return nil
}
