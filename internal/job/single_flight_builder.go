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
	"sync"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

// SingleFlightBuilder 把 Job 包装成 ecron 的任务。
// 同名任务同一时刻至多一个实例在跑：上一轮还没结束时到期的这一轮直接跳过。
// 不同任务之间互不影响，可以并发。
type SingleFlightBuilder struct {
	l *elog.Component
}

func NewSingleFlightBuilder() *SingleFlightBuilder {
	return &SingleFlightBuilder{
		l: elog.DefaultLogger,
	}
}

func (b *SingleFlightBuilder) Build(job Job) ecron.FuncJob {
	name := job.Name()
	var running sync.Mutex
	return func(ctx context.Context) error {
		if !running.TryLock() {
			b.l.Warn("上一轮还在运行，跳过本轮",
				elog.String("job-name", name))
			return nil
		}
		defer running.Unlock()
		start := time.Now()
		b.l.Debug("开始运行",
			elog.String("job-name", name))
		err := job.Run()
		if err != nil {
			b.l.Error("执行失败",
				elog.FieldErr(err),
				elog.String("job-name", name))
			return err
		}
		b.l.Debug("结束运行",
			elog.String("job-name", name),
			elog.FieldCost(time.Since(start)))
		return nil
	}
}
