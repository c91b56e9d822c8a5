//go:build wireinject

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

package redemption

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/event"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/job"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/cache"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component,
	cmd redis.Cmdable,
	ec ecache.Cache,
	q mq.MQ,
	mailer email.Service,
	reg prometheus.Registerer) (*Module, error) {
	wire.Build(
		initCampaignDAO,
		dao.NewRedisInventoryDAO,
		dao.NewRedisLedgerDAO,
		initCampaignCache,
		repository.NewCampaignRepository,
		repository.NewInventoryRepository,
		repository.NewLedgerRepository,
		event.NewRedeemedEventProducer,
		initMessageComposer,
		initRedeemConfig,
		service.NewRedeemService,
		service.NewAdminService,
		service.NewReconcileService,
		initQuarantineStaleCodesJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initCampaignDAO(db *egorm.Component) dao.CampaignDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCampaignDAO(db)
}

func initCampaignCache(ec ecache.Cache) cache.CampaignCache {
	ttl := econf.GetDuration("redemption.campaignCacheTTL")
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return cache.NewCampaignECache(ec, ttl)
}

func initMessageComposer() (*service.MessageComposer, error) {
	var brand service.BrandConfig
	err := econf.UnmarshalKey("redemption.brand", &brand)
	if err != nil {
		return nil, err
	}
	return service.NewMessageComposer(brand)
}

func initRedeemConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("redemption.redeem", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initQuarantineStaleCodesJob(svc service.ReconcileService, cfg service.Config) (*job.QuarantineStaleCodesJob, error) {
	olderThan := econf.GetDuration("redemption.reconcile.olderThan")
	if olderThan <= 0 {
		olderThan = 15 * time.Minute
	}
	if err := service.CheckQuarantineAge(olderThan, cfg); err != nil {
		return nil, err
	}
	return job.NewQuarantineStaleCodesJob(svc, olderThan), nil
}
