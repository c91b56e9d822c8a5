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

	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*QuarantineStaleCodesJob)(nil)

// QuarantineStaleCodesJob 处理取出之后一直没有确认的兑换码
type QuarantineStaleCodesJob struct {
	svc       service.ReconcileService
	olderThan time.Duration
	logger    *elog.Component
}

func NewQuarantineStaleCodesJob(svc service.ReconcileService, olderThan time.Duration) *QuarantineStaleCodesJob {
	return &QuarantineStaleCodesJob{
		svc:       svc,
		olderThan: olderThan,
		logger:    elog.DefaultLogger,
	}
}

func (j *QuarantineStaleCodesJob) Name() string {
	return "QuarantineStaleCodesJob"
}

func (j *QuarantineStaleCodesJob) Run(ctx context.Context) error {
	res, err := j.svc.QuarantineStale(ctx, j.olderThan)
	if err != nil {
		return fmt.Errorf("隔离超时未确认的兑换码: %w", err)
	}
	if res.Quarantined > 0 {
		j.logger.Warn("存在超时未确认的兑换码，需要人工核对",
			elog.Int64("scanned", res.Scanned),
			elog.Int64("quarantined", res.Quarantined))
	}
	return nil
}
