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
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCoupon     = errors.New("优惠码不能为空")
	ErrExpiryRequired  = errors.New("活动不存在，必须指定过期时间")
	ErrUnknownPlatform = errors.New("平台只能是 ios 或者 android")

	ErrAssignmentNotFound = repository.ErrAssignmentNotFound
)

const (
	reportPageSize    = 100
	reportConcurrency = 8
)

type InsertResult struct {
	// Provided 去掉空白和重复之后的数量
	Provided int
	Added    int64
}

type MigrateResult struct {
	Campaign domain.Campaign
	Codes    map[domain.Platform]int64
	Emails   int64
}

//go:generate mockgen -source=./admin.go -package=svcmocks -destination=./mocks/admin.mock.go AdminService
type AdminService interface {
	SaveCampaign(ctx context.Context, coupon string, expiresAt time.Time) (domain.Campaign, error)
	// EnsureCampaign expiresAt 为零值表示不修改过期时间，此时活动必须已经存在
	EnsureCampaign(ctx context.Context, coupon string, expiresAt time.Time) (domain.Campaign, error)
	InsertCodes(ctx context.Context, coupon string, platform domain.Platform, codes []string) (InsertResult, error)
	Report(ctx context.Context) ([]domain.CampaignReport, error)
	// MigrateLegacy 把没有区分活动的老数据迁移到指定活动下
	MigrateLegacy(ctx context.Context, coupon string, expiresAt time.Time) (MigrateResult, error)
	// RestoreOrphans 人工确认之后，把隔离的兑换码放回库存
	RestoreOrphans(ctx context.Context, coupon string, platform domain.Platform) (domain.RestoreResult, error)
	FindAssignment(ctx context.Context, code string) (domain.Assignment, error)
}

type adminService struct {
	campaignRepo  repository.CampaignRepository
	inventoryRepo repository.InventoryRepository
	ledgerRepo    repository.LedgerRepository
	now           func() time.Time
	logger        *elog.Component
}

func NewAdminService(
	campaignRepo repository.CampaignRepository,
	inventoryRepo repository.InventoryRepository,
	ledgerRepo repository.LedgerRepository,
) AdminService {
	return &adminService{
		campaignRepo:  campaignRepo,
		inventoryRepo: inventoryRepo,
		ledgerRepo:    ledgerRepo,
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
}

func (s *adminService) SaveCampaign(ctx context.Context, coupon string, expiresAt time.Time) (domain.Campaign, error) {
	coupon = domain.NormalizeCoupon(coupon)
	if coupon == "" {
		return domain.Campaign{}, ErrEmptyCoupon
	}
	c := domain.Campaign{Coupon: coupon, ExpiresAt: expiresAt.UnixMilli()}
	if err := s.campaignRepo.SaveCampaign(ctx, c); err != nil {
		return domain.Campaign{}, err
	}
	s.logger.Info("保存活动",
		elog.String("coupon", coupon),
		elog.String("expiresAt", c.ExpiresTime().Format(time.RFC3339Nano)))
	return c, nil
}

func (s *adminService) EnsureCampaign(ctx context.Context, coupon string, expiresAt time.Time) (domain.Campaign, error) {
	if !expiresAt.IsZero() {
		return s.SaveCampaign(ctx, coupon, expiresAt)
	}
	coupon = domain.NormalizeCoupon(coupon)
	if coupon == "" {
		return domain.Campaign{}, ErrEmptyCoupon
	}
	c, err := s.campaignRepo.FindCampaign(ctx, coupon)
	if errors.Is(err, repository.ErrCampaignNotFound) {
		return domain.Campaign{}, fmt.Errorf("%w: %s", ErrExpiryRequired, coupon)
	}
	return c, err
}

func (s *adminService) InsertCodes(ctx context.Context, coupon string, platform domain.Platform, codes []string) (InsertResult, error) {
	coupon = domain.NormalizeCoupon(coupon)
	if coupon == "" {
		return InsertResult{}, ErrEmptyCoupon
	}
	if !platform.Valid() {
		return InsertResult{}, ErrUnknownPlatform
	}
	if _, err := s.campaignRepo.FindCampaign(ctx, coupon); err != nil {
		return InsertResult{}, fmt.Errorf("查询活动 %s 失败: %w", coupon, err)
	}
	codes = CleanCodes(codes)
	added, err := s.inventoryRepo.BulkInsert(ctx, coupon, platform, codes)
	if err != nil {
		return InsertResult{Provided: len(codes), Added: added}, err
	}
	s.logger.Info("导入兑换码",
		elog.String("coupon", coupon),
		elog.String("platform", platform.String()),
		elog.Int("provided", len(codes)),
		elog.Int64("added", added))
	return InsertResult{Provided: len(codes), Added: added}, nil
}

func (s *adminService) Report(ctx context.Context) ([]domain.CampaignReport, error) {
	var campaigns []domain.Campaign
	for offset := 0; ; offset += reportPageSize {
		cs, err := s.campaignRepo.ListCampaigns(ctx, offset, reportPageSize)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, cs...)
		if len(cs) < reportPageSize {
			break
		}
	}

	res := make([]domain.CampaignReport, len(campaigns))
	now := s.now()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(reportConcurrency)
	for i := range campaigns {
		eg.Go(func() error {
			r, err := s.report(ctx, campaigns[i], now)
			res[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *adminService) report(ctx context.Context, c domain.Campaign, now time.Time) (domain.CampaignReport, error) {
	r := domain.CampaignReport{
		Campaign:  c,
		Expired:   c.Expired(now),
		Available: make(map[domain.Platform]int64, 2),
		Orphaned:  make(map[domain.Platform]int64, 2),
	}
	for _, p := range domain.Platforms() {
		cnt, err := s.inventoryRepo.Available(ctx, c.Coupon, p)
		if err != nil {
			return r, err
		}
		r.Available[p] = cnt
		cnt, err = s.inventoryRepo.Orphaned(ctx, c.Coupon, p)
		if err != nil {
			return r, err
		}
		r.Orphaned[p] = cnt
	}
	claimed, err := s.ledgerRepo.ClaimedCount(ctx, c.Coupon)
	r.Claimed = claimed
	return r, err
}

func (s *adminService) MigrateLegacy(ctx context.Context, coupon string, expiresAt time.Time) (MigrateResult, error) {
	if expiresAt.IsZero() {
		return MigrateResult{}, ErrExpiryRequired
	}
	c, err := s.SaveCampaign(ctx, coupon, expiresAt)
	if err != nil {
		return MigrateResult{}, err
	}
	res := MigrateResult{
		Campaign: c,
		Codes:    make(map[domain.Platform]int64, 2),
	}
	for _, p := range domain.Platforms() {
		moved, err := s.inventoryRepo.MergeLegacy(ctx, c.Coupon, p)
		if err != nil {
			return res, fmt.Errorf("迁移 %s 兑换码失败: %w", p, err)
		}
		res.Codes[p] = moved
	}
	res.Emails, err = s.ledgerRepo.MergeLegacy(ctx, c.Coupon)
	if err != nil {
		return res, fmt.Errorf("迁移已领取邮箱失败: %w", err)
	}
	s.logger.Info("迁移老数据",
		elog.String("coupon", c.Coupon),
		elog.Any("codes", res.Codes),
		elog.Int64("emails", res.Emails))
	return res, nil
}

func (s *adminService) RestoreOrphans(ctx context.Context, coupon string, platform domain.Platform) (domain.RestoreResult, error) {
	coupon = domain.NormalizeCoupon(coupon)
	if coupon == "" {
		return domain.RestoreResult{}, ErrEmptyCoupon
	}
	if !platform.Valid() {
		return domain.RestoreResult{}, ErrUnknownPlatform
	}
	res, err := s.inventoryRepo.RestoreOrphans(ctx, coupon, platform)
	if err != nil {
		return res, err
	}
	s.logger.Info("恢复隔离兑换码",
		elog.String("coupon", coupon),
		elog.String("platform", platform.String()),
		elog.Int64("restored", res.Restored),
		elog.Int64("skipped", res.Skipped))
	return res, nil
}

func (s *adminService) FindAssignment(ctx context.Context, code string) (domain.Assignment, error) {
	return s.ledgerRepo.FindAssignment(ctx, strings.TrimSpace(code))
}

// CleanCodes 去掉首尾空白、空行和重复的兑换码，保持原有顺序
func CleanCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	return slice.FilterMap(codes, func(idx int, src string) (string, bool) {
		src = strings.TrimSpace(src)
		if _, ok := seen[src]; ok || src == "" {
			return "", false
		}
		seen[src] = struct{}{}
		return src, true
	})
}

// SplitCodes 兼容换行和逗号两种分隔方式
func SplitCodes(raw string) []string {
	return CleanCodes(strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	}))
}
