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
	"net/http"
)

// Kind 兑换流程对外暴露的错误，客户端只能看到 Code
type Kind uint8

const (
	InternalError Kind = iota
	InvalidEmail
	InvalidPlatform
	// InvalidCoupon 没有填优惠码
	InvalidCoupon
	// CouponNotFound 优惠码不存在，对外和 InvalidCoupon 是同一个 Code
	CouponNotFound
	CouponExpired
	AlreadyClaimed
	NoCodesLeft
	EmailSendFailed
)

type detail struct {
	code   string
	status int
	msg    map[string]string
}

var details = map[Kind]detail{
	InternalError: {
		code:   "INTERNAL_ERROR",
		status: http.StatusInternalServerError,
		msg: map[string]string{
			"en": "Something went wrong. Please try again later.",
			"ko": "오류가 발생했습니다. 잠시 후 다시 시도해 주세요.",
		},
	},
	InvalidEmail: {
		code:   "INVALID_EMAIL",
		status: http.StatusBadRequest,
		msg: map[string]string{
			"en": "Please enter a valid email address.",
			"ko": "올바른 이메일 주소를 입력해 주세요.",
		},
	},
	InvalidPlatform: {
		code:   "INVALID_PLATFORM",
		status: http.StatusBadRequest,
		msg: map[string]string{
			"en": "Please choose iOS or Android.",
			"ko": "iOS 또는 Android를 선택해 주세요.",
		},
	},
	InvalidCoupon: {
		code:   "INVALID_COUPON",
		status: http.StatusBadRequest,
		msg: map[string]string{
			"en": "Please enter a coupon code.",
			"ko": "쿠폰 코드를 입력해 주세요.",
		},
	},
	CouponNotFound: {
		code:   "INVALID_COUPON",
		status: http.StatusNotFound,
		msg: map[string]string{
			"en": "This coupon code is not valid.",
			"ko": "유효하지 않은 쿠폰 코드입니다.",
		},
	},
	CouponExpired: {
		code:   "COUPON_EXPIRED",
		status: http.StatusGone,
		msg: map[string]string{
			"en": "This coupon has expired.",
			"ko": "만료된 쿠폰입니다.",
		},
	},
	AlreadyClaimed: {
		code:   "ALREADY_CLAIMED",
		status: http.StatusConflict,
		msg: map[string]string{
			"en": "A code has already been sent to this email.",
			"ko": "이미 이 이메일로 코드가 발송되었습니다.",
		},
	},
	NoCodesLeft: {
		code:   "NO_CODES_LEFT",
		status: http.StatusGone,
		msg: map[string]string{
			"en": "All codes have been claimed.",
			"ko": "모든 코드가 소진되었습니다.",
		},
	},
	EmailSendFailed: {
		code:   "EMAIL_SEND_FAILED",
		status: http.StatusBadGateway,
		msg: map[string]string{
			"en": "We could not send the email. Please try again.",
			"ko": "이메일을 보내지 못했습니다. 다시 시도해 주세요.",
		},
	},
}

func (k Kind) Error() string {
	return k.Code()
}

// Code 对外的错误码
func (k Kind) Code() string {
	return k.detail().code
}

// Status HTTP 状态码
func (k Kind) Status() int {
	return k.detail().status
}

// Message 展示给用户的文案，找不到对应语言就用英文
func (k Kind) Message(locale string) string {
	d := k.detail()
	if msg, ok := d.msg[locale]; ok {
		return msg
	}
	return d.msg["en"]
}

func (k Kind) detail() detail {
	d, ok := details[k]
	if !ok {
		return details[InternalError]
	}
	return d
}

// KindOf 不属于兑换流程的错误一律按 InternalError 处理
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return InternalError
}
