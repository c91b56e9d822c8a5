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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/cache"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCampaignNotFound = dao.ErrCampaignNotFound

//go:generate mockgen -source=./campaign.go -package=repomocks -destination=./mocks/campaign.mock.go CampaignRepository
type CampaignRepository interface {
	// FindCampaign coupon 需要已经归一化
	FindCampaign(ctx context.Context, coupon string) (domain.Campaign, error)
	SaveCampaign(ctx context.Context, c domain.Campaign) error
	ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error)
}

type campaignRepository struct {
	dao    dao.CampaignDAO
	cache  cache.CampaignCache
	logger *elog.Component
}

func NewCampaignRepository(d dao.CampaignDAO, c cache.CampaignCache) CampaignRepository {
	return &campaignRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *campaignRepository) FindCampaign(ctx context.Context, coupon string) (domain.Campaign, error) {
	res, err := repo.cache.Get(ctx, coupon)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrCampaignNotFound) {
		// 缓存出问题就直接查库
		repo.logger.Warn("查询活动缓存失败",
			elog.String("coupon", coupon),
			elog.FieldErr(err))
	}
	c, err := repo.dao.FindByCoupon(ctx, coupon)
	if err != nil {
		return domain.Campaign{}, err
	}
	res = repo.toDomain(c)
	if err1 := repo.cache.Set(ctx, res); err1 != nil {
		repo.logger.Warn("回写活动缓存失败",
			elog.String("coupon", coupon),
			elog.FieldErr(err1))
	}
	return res, nil
}

func (repo *campaignRepository) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	err := repo.dao.Upsert(ctx, dao.Campaign{
		Coupon:    c.Coupon,
		ExpiresAt: c.ExpiresAt,
	})
	if err != nil {
		return err
	}
	// 删除失败的话，最多在缓存过期之前读到旧的过期时间
	if err = repo.cache.Delete(ctx, c.Coupon); err != nil {
		repo.logger.Warn("删除活动缓存失败",
			elog.String("coupon", c.Coupon),
			elog.FieldErr(err))
	}
	return nil
}

func (repo *campaignRepository) ListCampaigns(ctx context.Context, offset, limit int) ([]domain.Campaign, error) {
	cs, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Campaign) domain.Campaign {
		return repo.toDomain(src)
	}), nil
}

func (repo *campaignRepository) toDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:        c.Id,
		Coupon:    c.Coupon,
		ExpiresAt: c.ExpiresAt,
		Ctime:     c.Ctime,
		Utime:     c.Utime,
	}
}
