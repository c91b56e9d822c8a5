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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/pkg/errors"
)

var ErrCampaignNotFound = errors.New("活动缓存不存在")

//go:generate mockgen -source=./campaign.go -package=cachemocks -destination=./mocks/campaign.mock.go CampaignCache
type CampaignCache interface {
	Get(ctx context.Context, coupon string) (domain.Campaign, error)
	Set(ctx context.Context, c domain.Campaign) error
	Delete(ctx context.Context, coupon string) error
}

type campaignECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewCampaignECache(ec ecache.Cache, expiration time.Duration) CampaignCache {
	return &campaignECache{
		ec: &ecache.NamespaceCache{
			Namespace: "redemption:campaign:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *campaignECache) Get(ctx context.Context, coupon string) (domain.Campaign, error) {
	val := c.ec.Get(ctx, coupon)
	if val.KeyNotFound() {
		return domain.Campaign{}, ErrCampaignNotFound
	}
	if val.Err != nil {
		return domain.Campaign{}, errors.Wrap(val.Err, "查询活动缓存出错")
	}
	var res domain.Campaign
	err := val.JSONScan(&res)
	if err != nil {
		return domain.Campaign{}, errors.Wrap(err, "反序列化活动失败")
	}
	return res, nil
}

func (c *campaignECache) Set(ctx context.Context, campaign domain.Campaign) error {
	data, err := json.Marshal(campaign)
	if err != nil {
		return errors.Wrap(err, "序列化活动失败")
	}
	return c.ec.Set(ctx, campaign.Coupon, string(data), c.expiration)
}

func (c *campaignECache) Delete(ctx context.Context, coupon string) error {
	_, err := c.ec.Delete(ctx, coupon)
	return err
}
