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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
)

var ErrInventoryEmpty = dao.ErrInventoryEmpty

//go:generate mockgen -source=./inventory.go -package=repomocks -destination=./mocks/inventory.mock.go InventoryRepository
type InventoryRepository interface {
	// BulkInsert 返回真正新增的数量，重复执行结果一致
	BulkInsert(ctx context.Context, coupon string, platform domain.Platform, codes []string) (int64, error)
	// Withdraw 原子地取出一个兑换码并留下待确认记录
	Withdraw(ctx context.Context, coupon string, platform domain.Platform, email string) (string, error)
	// Return 只有待确认的兑换码才会回到库存
	Return(ctx context.Context, coupon string, platform domain.Platform, code string) (bool, error)
	Available(ctx context.Context, coupon string, platform domain.Platform) (int64, error)
	Orphaned(ctx context.Context, coupon string, platform domain.Platform) (int64, error)
	PendingWithdrawals(ctx context.Context, cursor uint64, count int64) ([]domain.PendingWithdrawal, uint64, error)
	Quarantine(ctx context.Context, p domain.PendingWithdrawal, staleBefore time.Time) (bool, error)
	RestoreOrphans(ctx context.Context, coupon string, platform domain.Platform) (domain.RestoreResult, error)
	MergeLegacy(ctx context.Context, coupon string, platform domain.Platform) (int64, error)
}

type inventoryRepository struct {
	dao dao.InventoryDAO
}

func NewInventoryRepository(d dao.InventoryDAO) InventoryRepository {
	return &inventoryRepository{dao: d}
}

func (repo *inventoryRepository) BulkInsert(ctx context.Context, coupon string, platform domain.Platform, codes []string) (int64, error) {
	seen := make(map[string]struct{}, len(codes))
	codes = slice.FilterMap(codes, func(idx int, src string) (string, bool) {
		if _, ok := seen[src]; ok || src == "" {
			return "", false
		}
		seen[src] = struct{}{}
		return src, true
	})
	if len(codes) == 0 {
		return 0, nil
	}
	return repo.dao.Insert(ctx, coupon, platform.String(), codes)
}

func (repo *inventoryRepository) Withdraw(ctx context.Context, coupon string, platform domain.Platform, email string) (string, error) {
	return repo.dao.Withdraw(ctx, dao.PendingCode{
		Coupon:      coupon,
		Platform:    platform.String(),
		Email:       email,
		WithdrawnAt: time.Now().UnixMilli(),
	})
}

func (repo *inventoryRepository) Return(ctx context.Context, coupon string, platform domain.Platform, code string) (bool, error) {
	return repo.dao.Return(ctx, coupon, platform.String(), code)
}

func (repo *inventoryRepository) Available(ctx context.Context, coupon string, platform domain.Platform) (int64, error) {
	return repo.dao.Available(ctx, coupon, platform.String())
}

func (repo *inventoryRepository) Orphaned(ctx context.Context, coupon string, platform domain.Platform) (int64, error) {
	return repo.dao.Orphaned(ctx, coupon, platform.String())
}

func (repo *inventoryRepository) PendingWithdrawals(ctx context.Context, cursor uint64, count int64) ([]domain.PendingWithdrawal, uint64, error) {
	ps, next, err := repo.dao.ScanPending(ctx, cursor, count)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(ps, func(idx int, src dao.PendingCode) domain.PendingWithdrawal {
		return domain.PendingWithdrawal{
			Code:        src.Code,
			Coupon:      src.Coupon,
			Platform:    domain.Platform(src.Platform),
			Email:       src.Email,
			WithdrawnAt: time.UnixMilli(src.WithdrawnAt),
		}
	}), next, nil
}

func (repo *inventoryRepository) Quarantine(ctx context.Context, p domain.PendingWithdrawal, staleBefore time.Time) (bool, error) {
	return repo.dao.Quarantine(ctx, dao.PendingCode{
		Code:     p.Code,
		Coupon:   p.Coupon,
		Platform: p.Platform.String(),
	}, staleBefore.UnixMilli())
}

func (repo *inventoryRepository) RestoreOrphans(ctx context.Context, coupon string, platform domain.Platform) (domain.RestoreResult, error) {
	restored, skipped, err := repo.dao.RestoreOrphans(ctx, coupon, platform.String())
	return domain.RestoreResult{Restored: restored, Skipped: skipped}, err
}

func (repo *inventoryRepository) MergeLegacy(ctx context.Context, coupon string, platform domain.Platform) (int64, error) {
	return repo.dao.MergeLegacy(ctx, coupon, platform.String())
}
