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
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/ego-component/egorm"
	"github.com/redis/go-redis/v9"
)

// InitAdminService 给命令行工具用，不依赖消息队列和邮件渠道
func InitAdminService(db *egorm.Component, cmd redis.Cmdable, ec ecache.Cache) AdminService {
	return service.NewAdminService(
		repository.NewCampaignRepository(initCampaignDAO(db), initCampaignCache(ec)),
		repository.NewInventoryRepository(dao.NewRedisInventoryDAO(cmd)),
		repository.NewLedgerRepository(dao.NewRedisLedgerDAO(cmd)),
	)
}
