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

package domain

import (
	"strings"
	"time"

	regexp "github.com/dlclark/regexp2"
)

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

func Platforms() []Platform {
	return []Platform{PlatformIOS, PlatformAndroid}
}

// ParsePlatform 大小写不敏感
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

func (p Platform) Valid() bool {
	return p == PlatformIOS || p == PlatformAndroid
}

func (p Platform) String() string {
	return string(p)
}

// Label 邮件里展示给用户的名字
func (p Platform) Label() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformAndroid:
		return "Android"
	default:
		return string(p)
	}
}

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleKO Locale = "ko"
)

// ParseLocale 不认识的语言一律回退到英文
func ParseLocale(s string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if l == LocaleKO {
		return LocaleKO
	}
	return LocaleEN
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`, regexp.None)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	ok, err := emailRegexp.MatchString(email)
	return err == nil && ok
}

// RedeemRequest 用户原始输入，尚未校验和归一化
type RedeemRequest struct {
	Email    string
	Platform string
	Coupon   string
	Locale   string
}

// Assignment 一个兑换码最终发给了谁
type Assignment struct {
	Code     string
	Email    string
	Platform Platform
	Coupon   string
	SentAt   time.Time
}

// PendingWithdrawal 已经从库存中取出，但还没有确认发放的兑换码
type PendingWithdrawal struct {
	Code        string
	Coupon      string
	Platform    Platform
	Email       string
	WithdrawnAt time.Time
}

type CampaignReport struct {
	Campaign  Campaign
	Expired   bool
	Available map[Platform]int64
	Orphaned  map[Platform]int64
	// Claimed 已领取的邮箱数量
	Claimed int64
}

func (r CampaignReport) TotalAvailable() int64 {
	var total int64
	for _, cnt := range r.Available {
		total += cnt
	}
	return total
}

type RestoreResult struct {
	Restored int64
	// Skipped 已经有发放记录的兑换码，不会回到库存
	Skipped int64
}
