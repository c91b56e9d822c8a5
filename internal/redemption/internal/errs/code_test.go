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

package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		kind   Kind
		code   string
		status int
	}{
		{kind: InvalidEmail, code: "INVALID_EMAIL", status: http.StatusBadRequest},
		{kind: InvalidPlatform, code: "INVALID_PLATFORM", status: http.StatusBadRequest},
		{kind: InvalidCoupon, code: "INVALID_COUPON", status: http.StatusBadRequest},
		{kind: CouponNotFound, code: "INVALID_COUPON", status: http.StatusNotFound},
		{kind: CouponExpired, code: "COUPON_EXPIRED", status: http.StatusGone},
		{kind: AlreadyClaimed, code: "ALREADY_CLAIMED", status: http.StatusConflict},
		{kind: NoCodesLeft, code: "NO_CODES_LEFT", status: http.StatusGone},
		{kind: EmailSendFailed, code: "EMAIL_SEND_FAILED", status: http.StatusBadGateway},
		{kind: InternalError, code: "INTERNAL_ERROR", status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.kind.Code())
			assert.Equal(t, tc.code, tc.kind.Error())
			assert.Equal(t, tc.status, tc.kind.Status())
			assert.NotEmpty(t, tc.kind.Message("en"))
			assert.NotEmpty(t, tc.kind.Message("ko"))
			assert.Equal(t, tc.kind.Message("en"), tc.kind.Message("fr"))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, NoCodesLeft, KindOf(NoCodesLeft))
	assert.Equal(t, CouponExpired, KindOf(fmt.Errorf("兑换失败: %w", CouponExpired)))
	assert.Equal(t, InternalError, KindOf(errors.New("redis 超时")))
	assert.Equal(t, "INTERNAL_ERROR", Kind(200).Code())
}
