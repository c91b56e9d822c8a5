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
	"errors"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin")
	g.POST("/campaign/save", ginx.B[SaveCampaignReq](h.SaveCampaign))
	g.POST("/codes/insert", ginx.B[InsertCodesReq](h.InsertCodes))
	g.GET("/report", ginx.W(h.Report))
	g.POST("/codes/migrate", ginx.B[MigrateReq](h.Migrate))
	g.POST("/codes/restore", ginx.B[RestoreReq](h.Restore))
	g.POST("/codes/assignment", ginx.B[AssignmentReq](h.Assignment))
}

func (h *AdminHandler) SaveCampaign(ctx *ginx.Context, req SaveCampaignReq) (ginx.Result, error) {
	expiresAt, err := domain.ParseExpiry(req.ExpiresAt)
	if err != nil {
		return invalidParamResult, nil
	}
	c, err := h.svc.SaveCampaign(ctx, req.Coupon, expiresAt)
	if errors.Is(err, service.ErrEmptyCoupon) {
		return invalidParamResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCampaign(c)}, nil
}

func (h *AdminHandler) InsertCodes(ctx *ginx.Context, req InsertCodesReq) (ginx.Result, error) {
	platform, ok := domain.ParsePlatform(req.Platform)
	if !ok {
		return invalidParamResult, nil
	}
	var expiresAt time.Time
	if req.ExpiresAt != "" {
		var err error
		expiresAt, err = domain.ParseExpiry(req.ExpiresAt)
		if err != nil {
			return invalidParamResult, nil
		}
	}
	c, err := h.svc.EnsureCampaign(ctx, req.Coupon, expiresAt)
	switch {
	case errors.Is(err, service.ErrExpiryRequired):
		return campaignAbsentResult, nil
	case errors.Is(err, service.ErrEmptyCoupon):
		return invalidParamResult, nil
	case err != nil:
		return systemErrorResult, err
	}

	codes := append(service.CleanCodes(req.Codes), service.SplitCodes(req.Raw)...)
	res, err := h.svc.InsertCodes(ctx, c.Coupon, platform, codes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: InsertCodesResp{
		Coupon:   c.Coupon,
		Platform: platform.String(),
		Provided: res.Provided,
		Added:    res.Added,
	}}, nil
}

func (h *AdminHandler) Report(ctx *ginx.Context) (ginx.Result, error) {
	reports, err := h.svc.Report(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newReportResp(reports)}, nil
}

func (h *AdminHandler) Migrate(ctx *ginx.Context, req MigrateReq) (ginx.Result, error) {
	expiresAt, err := domain.ParseExpiry(req.ExpiresAt)
	if err != nil {
		return invalidParamResult, nil
	}
	res, err := h.svc.MigrateLegacy(ctx, req.Coupon, expiresAt)
	if errors.Is(err, service.ErrEmptyCoupon) {
		return invalidParamResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newMigrateResp(res)}, nil
}

func (h *AdminHandler) Restore(ctx *ginx.Context, req RestoreReq) (ginx.Result, error) {
	platform, ok := domain.ParsePlatform(req.Platform)
	if !ok {
		return invalidParamResult, nil
	}
	res, err := h.svc.RestoreOrphans(ctx, req.Coupon, platform)
	if errors.Is(err, service.ErrEmptyCoupon) {
		return invalidParamResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: RestoreResp{
		Restored: res.Restored,
		Skipped:  res.Skipped,
	}}, nil
}

func (h *AdminHandler) Assignment(ctx *ginx.Context, req AssignmentReq) (ginx.Result, error) {
	a, err := h.svc.FindAssignment(ctx, req.Code)
	if errors.Is(err, service.ErrAssignmentNotFound) {
		return notAssignedResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Assignment{
		Code:     a.Code,
		Email:    a.Email,
		Platform: a.Platform.String(),
		Coupon:   a.Coupon,
		SentAt:   a.SentAt.Format(time.RFC3339Nano),
	}}, nil
}
