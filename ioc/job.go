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

package ioc

import (
	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ecodeclub/contesthub/internal/job"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(
	sJob *contest.SyncJob,
	rJob *contest.RefreshJob,
) []ecron.Ecron {
	builder := job.NewSingleFlightBuilder()
	return []ecron.Ecron{
		ecron.Load("cron.sync").Build(ecron.WithJob(builder.Build(sJob))),
		ecron.Load("cron.refresh").Build(ecron.WithJob(builder.Build(rJob))),
	}
}
