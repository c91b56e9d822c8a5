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

// ErrorCode 管理后台使用的错误码，和对外的 Kind 分开
type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError    = ErrorCode{Code: 519001, Msg: "系统错误"}
	InvalidParam   = ErrorCode{Code: 419001, Msg: "参数错误"}
	CampaignAbsent = ErrorCode{Code: 419002, Msg: "活动不存在，需要指定过期时间"}
	NotAssigned    = ErrorCode{Code: 419003, Msg: "兑换码没有发放记录"}
)
