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

package dao

import "fmt"

// Redis 里的 key 和线上老数据保持一致，改动之前先确认迁移方案
const (
	pendingKey        = "codes:pending"
	assignedKeyPrefix = "codes:assigned:"
	legacyClaimedKey  = "codes:emails"
)

func availableKey(coupon, platform string) string {
	return fmt.Sprintf("codes:%s:%s:available", coupon, platform)
}

func orphanedKey(coupon, platform string) string {
	return fmt.Sprintf("codes:%s:%s:orphaned", coupon, platform)
}

func legacyAvailableKey(platform string) string {
	return fmt.Sprintf("codes:%s:available", platform)
}

func assignedKey(code string) string {
	return assignedKeyPrefix + code
}

func claimedKey(coupon string) string {
	return fmt.Sprintf("codes:emails:%s", coupon)
}

func reservationKey(coupon, email string) string {
	return fmt.Sprintf("codes:reserved:%s:%s", coupon, email)
}
