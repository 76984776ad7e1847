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

// SyncContestsJob 按排期跑一轮摄取管线。
// 某个来源失败只体现在报告里，等下一轮排期重试，这里不在一轮内重试。
type SyncContestsJob struct {
	svc     service.SyncService
	timeout time.Duration
}

func NewSyncContestsJob(svc service.SyncService, timeout time.Duration) *SyncContestsJob {
	return &SyncContestsJob{svc: svc, timeout: timeout}
}

func (j *SyncContestsJob) Name() string {
	return "SyncContestsJob"
}

func (j *SyncContestsJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, err := j.svc.Sync(ctx)
	if err != nil {
		return fmt.Errorf("同步比赛失败: %w", err)
	}
	return nil
}
