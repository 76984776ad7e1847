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
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name        string
	started     chan struct{}
	startedOnce sync.Once
	release     chan struct{}
	runs        atomic.Int32
	err         error
}

func (f *fakeJob) Name() string {
	return f.name
}

func (f *fakeJob) Run() error {
	f.runs.Add(1)
	if f.started != nil {
		f.startedOnce.Do(func() {
			close(f.started)
		})
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func TestSingleFlightBuilder_skipWhileRunning(t *testing.T) {
	fj := &fakeJob{
		name:    "test-job",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	fn := NewSingleFlightBuilder().Build(fj)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = fn(context.Background())
	}()
	// 等第一轮真正跑起来再触发第二轮
	<-fj.started
	err := fn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), fj.runs.Load())

	close(fj.release)
	wg.Wait()
	// 第一轮结束之后又可以正常触发
	require.NoError(t, fn(context.Background()))
	assert.Equal(t, int32(2), fj.runs.Load())
}

func TestSingleFlightBuilder_independentJobs(t *testing.T) {
	blocked := &fakeJob{
		name:    "blocked-job",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	other := &fakeJob{name: "other-job"}
	builder := NewSingleFlightBuilder()
	blockedFn := builder.Build(blocked)
	otherFn := builder.Build(other)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = blockedFn(context.Background())
	}()
	<-blocked.started
	// 一个任务卡住不影响另一个任务执行
	done := make(chan error, 1)
	go func() {
		done <- otherFn(context.Background())
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("不同任务之间不应该互相阻塞")
	}
	assert.Equal(t, int32(1), other.runs.Load())

	close(blocked.release)
	wg.Wait()
}

func TestSingleFlightBuilder_propagatesError(t *testing.T) {
	wantErr := errors.New("mock 执行失败")
	fj := &fakeJob{name: "failing-job", err: wantErr}
	fn := NewSingleFlightBuilder().Build(fj)
	err := fn(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
