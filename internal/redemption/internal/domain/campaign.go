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
	"fmt"
	"strings"
	"time"
)

// dateLayout 运营习惯只写日期，过期时间取当天最后一毫秒(UTC)
const dateLayout = "2006-01-02"

type Campaign struct {
	ID int64
	// Coupon 归一化之后的活动标识，也就是用户输入的优惠码
	Coupon string
	// ExpiresAt 毫秒时间戳，到达这一刻即过期
	ExpiresAt int64
	Ctime     int64
	Utime     int64
}

// Expired 以领取那一刻为准，now 恰好等于 ExpiresAt 也算过期
func (c Campaign) Expired(now time.Time) bool {
	return now.UnixMilli() >= c.ExpiresAt
}

func (c Campaign) ExpiresTime() time.Time {
	return time.UnixMilli(c.ExpiresAt).UTC()
}

// NormalizeCoupon 存储和查询之前都要先归一化
func NormalizeCoupon(coupon string) string {
	return strings.ToUpper(strings.TrimSpace(coupon))
}

// ParseExpiry 支持 YYYY-MM-DD 和 RFC3339 两种写法
// YYYY-MM-DD 会被展开成当天的 23:59:59.999Z
func ParseExpiry(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.Add(24*time.Hour - time.Millisecond), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析过期时间 %q: %w", s, err)
	}
	return t.UTC(), nil
}
