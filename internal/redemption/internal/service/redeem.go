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

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/errs"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/event"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type Config struct {
	// BypassEmails 内部测试邮箱，不受一个邮箱只能领一次的限制
	BypassEmails []string `yaml:"bypassEmails"`
	// Reservation 开启之后，同一个邮箱的并发请求只有一个能进入取码环节
	Reservation    bool          `yaml:"reservation"`
	ReservationTTL time.Duration `yaml:"reservationTTL"`
	// DispatchTimeout 取出兑换码之后，发送邮件和落账的总时间
	DispatchTimeout time.Duration `yaml:"dispatchTimeout"`
}

const (
	defaultReservationTTL  = 2 * time.Minute
	defaultDispatchTimeout = 30 * time.Second
)

// DispatchWindow 取码之后发送邮件和落账最多占用的时间
func (c Config) DispatchWindow() time.Duration {
	if c.DispatchTimeout <= 0 {
		return defaultDispatchTimeout
	}
	return c.DispatchTimeout
}

//go:generate mockgen -source=./redeem.go -package=svcmocks -destination=./mocks/redeem.mock.go RedeemService
type RedeemService interface {
	// Redeem 返回的错误可以用 errs.KindOf 转成对外的错误码
	Redeem(ctx context.Context, req domain.RedeemRequest) error
}

type redeemService struct {
	campaignRepo  repository.CampaignRepository
	inventoryRepo repository.InventoryRepository
	ledgerRepo    repository.LedgerRepository
	mailer        email.Service
	composer      *MessageComposer
	producer      event.RedeemedEventProducer

	bypass          map[string]struct{}
	reservation     bool
	reservationTTL  time.Duration
	dispatchTimeout time.Duration

	now    func() time.Time
	logger *elog.Component
}

func NewRedeemService(
	campaignRepo repository.CampaignRepository,
	inventoryRepo repository.InventoryRepository,
	ledgerRepo repository.LedgerRepository,
	mailer email.Service,
	composer *MessageComposer,
	producer event.RedeemedEventProducer,
	cfg Config,
) RedeemService {
	bypass := make(map[string]struct{}, len(cfg.BypassEmails))
	for _, e := range cfg.BypassEmails {
		bypass[domain.NormalizeEmail(e)] = struct{}{}
	}
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = defaultReservationTTL
	}
	return &redeemService{
		campaignRepo:    campaignRepo,
		inventoryRepo:   inventoryRepo,
		ledgerRepo:      ledgerRepo,
		mailer:          mailer,
		composer:        composer,
		producer:        producer,
		bypass:          bypass,
		reservation:     cfg.Reservation,
		reservationTTL:  cfg.ReservationTTL,
		dispatchTimeout: cfg.DispatchWindow(),
		now:             time.Now,
		logger:          elog.DefaultLogger,
	}
}

func (s *redeemService) Redeem(ctx context.Context, req domain.RedeemRequest) error {
	addr := domain.NormalizeEmail(req.Email)
	if !domain.ValidEmail(addr) {
		return errs.InvalidEmail
	}
	platform, ok := domain.ParsePlatform(req.Platform)
	if !ok {
		return errs.InvalidPlatform
	}
	coupon := domain.NormalizeCoupon(req.Coupon)
	if coupon == "" {
		return errs.InvalidCoupon
	}
	locale := domain.ParseLocale(req.Locale)

	campaign, err := s.campaignRepo.FindCampaign(ctx, coupon)
	if errors.Is(err, repository.ErrCampaignNotFound) {
		return errs.CouponNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: 查询活动失败: %w", errs.InternalError, err)
	}
	if campaign.Expired(s.now()) {
		return errs.CouponExpired
	}

	token, err := s.checkClaim(ctx, coupon, addr)
	if err != nil {
		return err
	}

	code, err := s.inventoryRepo.Withdraw(ctx, coupon, platform, addr)
	if err != nil {
		// 调用方取消之后依旧要释放预占，否则重试会一直拿到 ALREADY_CLAIMED
		s.release(context.WithoutCancel(ctx), coupon, addr, token)
		if errors.Is(err, repository.ErrInventoryEmpty) {
			return errs.NoCodesLeft
		}
		return fmt.Errorf("%w: 取兑换码失败: %w", errs.InternalError, err)
	}

	// 兑换码已经取出，后续步骤不再跟随调用方取消
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.dispatchTimeout)
	defer cancel()
	return s.dispatch(dctx, campaign.Coupon, addr, platform, locale, code, token)
}

// checkClaim 返回预占的 token，白名单邮箱或者没有开启预占时为空
func (s *redeemService) checkClaim(ctx context.Context, coupon, addr string) (string, error) {
	if _, ok := s.bypass[addr]; ok {
		return "", nil
	}
	claimed, err := s.ledgerRepo.HasClaimed(ctx, coupon, addr)
	if err != nil {
		return "", fmt.Errorf("%w: 查询领取记录失败: %w", errs.InternalError, err)
	}
	if claimed {
		return "", errs.AlreadyClaimed
	}
	if !s.reservation {
		return "", nil
	}
	token, err := s.ledgerRepo.Reserve(ctx, coupon, addr, s.reservationTTL)
	switch {
	case errors.Is(err, repository.ErrAlreadyClaimed),
		errors.Is(err, repository.ErrClaimInProgress):
		return "", errs.AlreadyClaimed
	case err != nil:
		return "", fmt.Errorf("%w: 预占领取资格失败: %w", errs.InternalError, err)
	}
	return token, nil
}

func (s *redeemService) dispatch(ctx context.Context,
	coupon, addr string,
	platform domain.Platform,
	locale domain.Locale,
	code, token string) error {
	mail, err := s.composer.Compose(addr, locale, platform, code)
	if err != nil {
		s.compensate(ctx, coupon, addr, platform, code, token)
		return fmt.Errorf("%w: %w", errs.InternalError, err)
	}
	err = s.mailer.SendMail(ctx, mail)
	if err != nil {
		s.logger.Warn("兑换码邮件发送失败，退回兑换码",
			elog.String("coupon", coupon),
			elog.String("platform", platform.String()),
			elog.String("email", addr),
			elog.FieldErr(err))
		s.compensate(ctx, coupon, addr, platform, code, token)
		return fmt.Errorf("%w: %w", errs.EmailSendFailed, err)
	}

	a := domain.Assignment{
		Code:     code,
		Email:    addr,
		Platform: platform,
		Coupon:   coupon,
		SentAt:   s.now(),
	}
	err = s.ledgerRepo.Commit(ctx, a, token)
	if err != nil {
		// 邮件已经发出去了，不能退回兑换码，待确认记录留给对账任务处理
		s.logger.Error("兑换码已发送但是记录发放失败",
			elog.String("coupon", coupon),
			elog.String("platform", platform.String()),
			elog.String("code", code),
			elog.String("email", addr),
			elog.FieldErr(err))
		return fmt.Errorf("%w: 记录发放失败: %w", errs.InternalError, err)
	}

	err = s.producer.Produce(ctx, event.CodeRedeemedEvent{
		Code:     a.Code,
		Coupon:   a.Coupon,
		Platform: a.Platform.String(),
		Email:    a.Email,
		SentAt:   a.SentAt.UnixMilli(),
	})
	if err != nil {
		s.logger.Warn("发送兑换成功消息失败",
			elog.String("code", code),
			elog.FieldErr(err))
	}
	return nil
}

// compensate 退回兑换码，每次取出最多退回一次
func (s *redeemService) compensate(ctx context.Context, coupon, addr string, platform domain.Platform, code, token string) {
	defer s.release(ctx, coupon, addr, token)
	ok, err := s.inventoryRepo.Return(ctx, coupon, platform, code)
	if err != nil {
		s.logger.Error("退回兑换码失败",
			elog.String("coupon", coupon),
			elog.String("platform", platform.String()),
			elog.String("code", code),
			elog.FieldErr(err))
		return
	}
	if !ok {
		s.logger.Warn("兑换码已不在待确认状态，跳过退回",
			elog.String("coupon", coupon),
			elog.String("platform", platform.String()),
			elog.String("code", code))
	}
}

func (s *redeemService) release(ctx context.Context, coupon, addr, token string) {
	if token == "" {
		return
	}
	if err := s.ledgerRepo.Release(ctx, coupon, addr, token); err != nil {
		// 预占会自然过期
		s.logger.Warn("释放领取预占失败",
			elog.String("coupon", coupon),
			elog.String("email", addr),
			elog.FieldErr(err))
	}
}
