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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/errs"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const outcomeSuccess = "SUCCESS"

type Handler struct {
	svc      service.RedeemService
	outcomes *prometheus.CounterVec
	logger   *elog.Component
}

func NewHandler(svc service.RedeemService, reg prometheus.Registerer) *Handler {
	return &Handler{
		svc: svc,
		outcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "redeemer",
			Name:      "redemption_outcomes_total",
			Help:      "兑换请求的处理结果",
		}, []string{"outcome"}),
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/api/send-code", ginx.W(h.SendCode))
}

// SendCode 不走 ginx.Result 的统一格式，状态码和错误码都是对外约定好的
func (h *Handler) SendCode(ctx *ginx.Context) (ginx.Result, error) {
	var req SendCodeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Error("解析兑换请求失败", elog.FieldErr(err))
		h.writeError(ctx, errs.InternalError, domain.LocaleEN)
		return ginx.Result{}, ginx.ErrNoResponse
	}

	err := h.svc.Redeem(ctx.Request.Context(), req.toDomain())
	if err == nil {
		h.outcomes.WithLabelValues(outcomeSuccess).Inc()
		ctx.JSON(http.StatusOK, SendCodeResp{Success: true})
		return ginx.Result{}, ginx.ErrNoResponse
	}

	kind := errs.KindOf(err)
	if kind == errs.InternalError || kind == errs.EmailSendFailed {
		h.logger.Error("兑换失败",
			elog.String("coupon", req.Coupon),
			elog.String("platform", req.Platform),
			elog.String("email", req.Email),
			elog.FieldErr(err))
	}
	h.writeError(ctx, kind, domain.ParseLocale(req.Locale))
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) writeError(ctx *ginx.Context, kind errs.Kind, locale domain.Locale) {
	h.outcomes.WithLabelValues(kind.Code()).Inc()
	ctx.JSON(kind.Status(), SendCodeResp{
		Error:   kind.Code(),
		Message: kind.Message(string(locale)),
	})
}
