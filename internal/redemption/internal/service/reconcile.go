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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"go.uber.org/multierr"
)

const reconcileBatchSize = 200

var ErrQuarantineTooEarly = errors.New("隔离等待时间必须大于取码之后的处理超时")

// CheckQuarantineAge olderThan 不大于处理超时的话，正在发送的兑换码也会被隔离
func CheckQuarantineAge(olderThan time.Duration, cfg Config) error {
	if olderThan <= cfg.DispatchWindow() {
		return fmt.Errorf("%w: olderThan=%s, dispatchTimeout=%s",
			ErrQuarantineTooEarly, olderThan, cfg.DispatchWindow())
	}
	return nil
}

type ReconcileResult struct {
	Scanned     int64
	Quarantined int64
}

//go:generate mockgen -source=./reconcile.go -package=svcmocks -destination=./mocks/reconcile.mock.go ReconcileService
type ReconcileService interface {
	// QuarantineStale 把超过 olderThan 仍未确认的兑换码移到隔离区
	// 这些兑换码可能已经发给了用户，只能人工确认之后再放回库存
	QuarantineStale(ctx context.Context, olderThan time.Duration) (ReconcileResult, error)
}

type reconcileService struct {
	inventoryRepo repository.InventoryRepository
	now           func() time.Time
	logger        *elog.Component
}

func NewReconcileService(inventoryRepo repository.InventoryRepository) ReconcileService {
	return &reconcileService{
		inventoryRepo: inventoryRepo,
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
}

func (s *reconcileService) QuarantineStale(ctx context.Context, olderThan time.Duration) (ReconcileResult, error) {
	staleBefore := s.now().Add(-olderThan)
	var (
		res    ReconcileResult
		merr   error
		cursor uint64
	)
	for {
		ps, next, err := s.inventoryRepo.PendingWithdrawals(ctx, cursor, reconcileBatchSize)
		if err != nil {
			return res, multierr.Append(merr, err)
		}
		for _, p := range ps {
			res.Scanned++
			if !p.WithdrawnAt.Before(staleBefore) {
				continue
			}
			ok, err := s.inventoryRepo.Quarantine(ctx, p, staleBefore)
			if err != nil {
				merr = multierr.Append(merr, err)
				continue
			}
			if ok {
				res.Quarantined++
				s.logger.Warn("隔离未确认的兑换码",
					elog.String("coupon", p.Coupon),
					elog.String("platform", p.Platform.String()),
					elog.String("code", p.Code),
					elog.String("email", p.Email),
					elog.String("withdrawnAt", p.WithdrawnAt.UTC().Format(time.RFC3339)))
			}
		}
		if next == 0 {
			return res, merr
		}
		cursor = next
	}
}
