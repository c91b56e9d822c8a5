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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCampaignNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./campaign.go -package=daomocks -destination=./mocks/campaign.mock.go CampaignDAO
type CampaignDAO interface {
	// Upsert 按 coupon 创建或者更新过期时间
	Upsert(ctx context.Context, c Campaign) error
	FindByCoupon(ctx context.Context, coupon string) (Campaign, error)
	List(ctx context.Context, offset, limit int) ([]Campaign, error)
}

type gormCampaignDAO struct {
	db *egorm.Component
}

func NewGORMCampaignDAO(db *egorm.Component) CampaignDAO {
	return &gormCampaignDAO{db: db}
}

func (g *gormCampaignDAO) Upsert(ctx context.Context, c Campaign) error {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "coupon"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"expires_at",
			"utime",
		}),
	}).Create(&c).Error
}

func (g *gormCampaignDAO) FindByCoupon(ctx context.Context, coupon string) (Campaign, error) {
	var res Campaign
	err := g.db.WithContext(ctx).Where("coupon = ?", coupon).First(&res).Error
	return res, err
}

func (g *gormCampaignDAO) List(ctx context.Context, offset, limit int) ([]Campaign, error) {
	var res []Campaign
	err := g.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type Campaign struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:活动自增ID"`
	Coupon    string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_coupon;comment:归一化之后的优惠码"`
	ExpiresAt int64  `gorm:"not null;comment:过期时间,毫秒时间戳"`
	Ctime     int64
	Utime     int64
}
