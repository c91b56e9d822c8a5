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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
)

type SendCodeReq struct {
	Email    string `json:"email"`
	Platform string `json:"platform"`
	Coupon   string `json:"coupon"`
	Locale   string `json:"locale"`
}

func (r SendCodeReq) toDomain() domain.RedeemRequest {
	return domain.RedeemRequest{
		Email:    r.Email,
		Platform: r.Platform,
		Coupon:   r.Coupon,
		Locale:   r.Locale,
	}
}

type SendCodeResp struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	// Message 按 locale 本地化之后的提示
	Message string `json:"message,omitempty"`
}

type SaveCampaignReq struct {
	Coupon string `json:"coupon"`
	// ExpiresAt YYYY-MM-DD 或者 RFC3339
	ExpiresAt string `json:"expiresAt"`
}

type InsertCodesReq struct {
	Coupon   string `json:"coupon"`
	Platform string `json:"platform"`
	// ExpiresAt 可选，活动不存在时必填
	ExpiresAt string   `json:"expiresAt"`
	Codes     []string `json:"codes"`
	// Raw 逗号或者换行分隔的兑换码，和 Codes 合并
	Raw string `json:"raw"`
}

type InsertCodesResp struct {
	Coupon   string `json:"coupon"`
	Platform string `json:"platform"`
	Provided int    `json:"provided"`
	Added    int64  `json:"added"`
}

type MigrateReq struct {
	Coupon    string `json:"coupon"`
	ExpiresAt string `json:"expiresAt"`
}

type MigrateResp struct {
	Coupon string           `json:"coupon"`
	Codes  map[string]int64 `json:"codes"`
	Emails int64            `json:"emails"`
}

type RestoreReq struct {
	Coupon   string `json:"coupon"`
	Platform string `json:"platform"`
}

type RestoreResp struct {
	Restored int64 `json:"restored"`
	Skipped  int64 `json:"skipped"`
}

type AssignmentReq struct {
	Code string `json:"code"`
}

type Assignment struct {
	Code     string `json:"code"`
	Email    string `json:"email"`
	Platform string `json:"platform"`
	Coupon   string `json:"coupon"`
	SentAt   string `json:"sentAt"`
}

type Campaign struct {
	Coupon    string `json:"coupon"`
	ExpiresAt string `json:"expiresAt"`
}

func newCampaign(c domain.Campaign) Campaign {
	return Campaign{
		Coupon:    c.Coupon,
		ExpiresAt: c.ExpiresTime().Format(time.RFC3339Nano),
	}
}

type CampaignReport struct {
	Coupon         string           `json:"coupon"`
	ExpiresAt      string           `json:"expiresAt"`
	Expired        bool             `json:"expired"`
	Available      map[string]int64 `json:"available"`
	TotalAvailable int64            `json:"totalAvailable"`
	Orphaned       map[string]int64 `json:"orphaned"`
	Claimed        int64            `json:"claimed"`
}

type ReportResp struct {
	Campaigns []CampaignReport `json:"campaigns"`
}

func newReportResp(reports []domain.CampaignReport) ReportResp {
	return ReportResp{
		Campaigns: slice.Map(reports, func(idx int, src domain.CampaignReport) CampaignReport {
			return CampaignReport{
				Coupon:         src.Campaign.Coupon,
				ExpiresAt:      src.Campaign.ExpiresTime().Format(time.RFC3339Nano),
				Expired:        src.Expired,
				Available:      platformCounts(src.Available),
				TotalAvailable: src.TotalAvailable(),
				Orphaned:       platformCounts(src.Orphaned),
				Claimed:        src.Claimed,
			}
		}),
	}
}

func newMigrateResp(res service.MigrateResult) MigrateResp {
	return MigrateResp{
		Coupon: res.Campaign.Coupon,
		Codes:  platformCounts(res.Codes),
		Emails: res.Emails,
	}
}

func platformCounts(m map[domain.Platform]int64) map[string]int64 {
	res := make(map[string]int64, len(m))
	for p, cnt := range m {
		res[p.String()] = cnt
	}
	return res
}
