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
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/job"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/web"
)

type (
	Handler                 = web.Handler
	AdminHandler            = web.AdminHandler
	RedeemService           = service.RedeemService
	AdminService            = service.AdminService
	InsertResult            = service.InsertResult
	MigrateResult           = service.MigrateResult
	Platform                = domain.Platform
	Campaign                = domain.Campaign
	CampaignReport          = domain.CampaignReport
	RestoreResult           = domain.RestoreResult
	QuarantineStaleCodesJob = job.QuarantineStaleCodesJob
)

const (
	PlatformIOS     = domain.PlatformIOS
	PlatformAndroid = domain.PlatformAndroid
)

var (
	ParsePlatform = domain.ParsePlatform
	ParseExpiry   = domain.ParseExpiry
	SplitCodes    = service.SplitCodes
	Platforms     = domain.Platforms
)

type Module struct {
	Hdl                     *Handler
	AdminHdl                *AdminHandler
	Svc                     RedeemService
	AdminSvc                AdminService
	QuarantineStaleCodesJob *QuarantineStaleCodesJob
}
