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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrAlreadyClaimed     = errors.New("该邮箱已经领取过")
	ErrClaimInProgress    = errors.New("该邮箱的领取请求正在处理")
	ErrAssignmentNotFound = dao.ErrAssignmentNotFound
)

//go:generate mockgen -source=./ledger.go -package=repomocks -destination=./mocks/ledger.mock.go LedgerRepository
type LedgerRepository interface {
	HasClaimed(ctx context.Context, coupon, email string) (bool, error)
	// Reserve 成功时返回 token，已经领取过返回 ErrAlreadyClaimed，
	// 另一个请求持有预占返回 ErrClaimInProgress
	Reserve(ctx context.Context, coupon, email string, ttl time.Duration) (string, error)
	Release(ctx context.Context, coupon, email, token string) error
	// Commit 标记已领取并记录发放，两者一次性写入
	Commit(ctx context.Context, a domain.Assignment, token string) error
	ClaimedCount(ctx context.Context, coupon string) (int64, error)
	FindAssignment(ctx context.Context, code string) (domain.Assignment, error)
	MergeLegacy(ctx context.Context, coupon string) (int64, error)
}

type ledgerRepository struct {
	dao dao.LedgerDAO
}

func NewLedgerRepository(d dao.LedgerDAO) LedgerRepository {
	return &ledgerRepository{dao: d}
}

func (repo *ledgerRepository) HasClaimed(ctx context.Context, coupon, email string) (bool, error) {
	return repo.dao.HasClaimed(ctx, coupon, email)
}

func (repo *ledgerRepository) Reserve(ctx context.Context, coupon, email string, ttl time.Duration) (string, error) {
	token := shortuuid.New()
	status, err := repo.dao.Reserve(ctx, coupon, email, token, ttl)
	if err != nil {
		return "", err
	}
	switch status {
	case dao.ReserveOK:
		return token, nil
	case dao.ReserveClaimed:
		return "", ErrAlreadyClaimed
	case dao.ReserveHeld:
		return "", ErrClaimInProgress
	default:
		return "", fmt.Errorf("未知的预占结果 %d", status)
	}
}

func (repo *ledgerRepository) Release(ctx context.Context, coupon, email, token string) error {
	return repo.dao.Release(ctx, coupon, email, token)
}

func (repo *ledgerRepository) Commit(ctx context.Context, a domain.Assignment, token string) error {
	return repo.dao.Commit(ctx, dao.Assignment{
		Code:     a.Code,
		Email:    a.Email,
		Platform: a.Platform.String(),
		Coupon:   a.Coupon,
		SentAt:   a.SentAt.UTC(),
	}, token)
}

func (repo *ledgerRepository) ClaimedCount(ctx context.Context, coupon string) (int64, error) {
	return repo.dao.ClaimedCount(ctx, coupon)
}

func (repo *ledgerRepository) FindAssignment(ctx context.Context, code string) (domain.Assignment, error) {
	a, err := repo.dao.FindAssignment(ctx, code)
	if err != nil {
		return domain.Assignment{}, err
	}
	return domain.Assignment{
		Code:     a.Code,
		Email:    a.Email,
		Platform: domain.Platform(a.Platform),
		Coupon:   a.Coupon,
		SentAt:   a.SentAt,
	}, nil
}

func (repo *ledgerRepository) MergeLegacy(ctx context.Context, coupon string) (int64, error) {
	return repo.dao.MergeLegacy(ctx, coupon)
}
