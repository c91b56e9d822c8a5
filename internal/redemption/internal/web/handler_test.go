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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/errs"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	svcmocks "github.com/ecodeclub/redeemer/internal/redemption/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_SendCode(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) service.RedeemService
		body string

		wantCode    int
		wantResp    SendCodeResp
		wantOutcome string
	}{
		{
			name: "兑换成功",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), domain.RedeemRequest{
					Email:    "a@b.co",
					Platform: "ios",
					Coupon:   "SPRING",
					Locale:   "en",
				}).Return(nil)
				return svc
			},
			body:        `{"email":"a@b.co","platform":"ios","coupon":"SPRING","locale":"en"}`,
			wantCode:    http.StatusOK,
			wantResp:    SendCodeResp{Success: true},
			wantOutcome: outcomeSuccess,
		},
		{
			name: "请求体不是合法JSON",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				return svcmocks.NewMockRedeemService(ctrl)
			},
			body:     `{"email":`,
			wantCode: http.StatusInternalServerError,
			wantResp: SendCodeResp{
				Error:   "INTERNAL_ERROR",
				Message: errs.InternalError.Message("en"),
			},
			wantOutcome: "INTERNAL_ERROR",
		},
		{
			name: "邮箱非法",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(errs.InvalidEmail)
				return svc
			},
			body:     `{"email":"abc","platform":"ios","coupon":"SPRING"}`,
			wantCode: http.StatusBadRequest,
			wantResp: SendCodeResp{
				Error:   "INVALID_EMAIL",
				Message: errs.InvalidEmail.Message("en"),
			},
			wantOutcome: "INVALID_EMAIL",
		},
		{
			name: "优惠码不存在",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(errs.CouponNotFound)
				return svc
			},
			body:     `{"email":"a@b.co","platform":"ios","coupon":"NOPE"}`,
			wantCode: http.StatusNotFound,
			wantResp: SendCodeResp{
				Error:   "INVALID_COUPON",
				Message: errs.CouponNotFound.Message("en"),
			},
			wantOutcome: "INVALID_COUPON",
		},
		{
			name: "已经领取_韩语提示",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(errs.AlreadyClaimed)
				return svc
			},
			body:     `{"email":"a@b.co","platform":"android","coupon":"SPRING","locale":"ko"}`,
			wantCode: http.StatusConflict,
			wantResp: SendCodeResp{
				Error:   "ALREADY_CLAIMED",
				Message: errs.AlreadyClaimed.Message("ko"),
			},
			wantOutcome: "ALREADY_CLAIMED",
		},
		{
			name: "邮件发送失败",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: %w", errs.EmailSendFailed, errors.New("smtp 超时")))
				return svc
			},
			body:     `{"email":"a@b.co","platform":"ios","coupon":"SPRING"}`,
			wantCode: http.StatusBadGateway,
			wantResp: SendCodeResp{
				Error:   "EMAIL_SEND_FAILED",
				Message: errs.EmailSendFailed.Message("en"),
			},
			wantOutcome: "EMAIL_SEND_FAILED",
		},
		{
			name: "未知错误按内部错误处理",
			mock: func(ctrl *gomock.Controller) service.RedeemService {
				svc := svcmocks.NewMockRedeemService(ctrl)
				svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(errors.New("redis 挂了"))
				return svc
			},
			body:     `{"email":"a@b.co","platform":"ios","coupon":"SPRING"}`,
			wantCode: http.StatusInternalServerError,
			wantResp: SendCodeResp{
				Error:   "INTERNAL_ERROR",
				Message: errs.InternalError.Message("en"),
			},
			wantOutcome: "INTERNAL_ERROR",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			hdl := NewHandler(tc.mock(ctrl), prometheus.NewRegistry())
			server := gin.New()
			hdl.PublicRoutes(server)

			req := httptest.NewRequest(http.MethodPost, "/api/send-code", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			var resp SendCodeResp
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, tc.wantResp, resp)
			assert.Equal(t, float64(1), testutil.ToFloat64(hdl.outcomes.WithLabelValues(tc.wantOutcome)))
		})
	}
}

func TestHandler_SendCode_SuccessBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockRedeemService(ctrl)
	svc.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil)

	server := gin.New()
	NewHandler(svc, prometheus.NewRegistry()).PublicRoutes(server)
	req := httptest.NewRequest(http.MethodPost, "/api/send-code",
		bytes.NewBufferString(`{"email":"a@b.co","platform":"ios","coupon":"SPRING"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"success":true}`, recorder.Body.String())
}
