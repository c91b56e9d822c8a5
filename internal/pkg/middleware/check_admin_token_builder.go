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

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const bearerPrefix = "Bearer "

// CheckAdminTokenBuilder 管理后台只有一个共享的 token
type CheckAdminTokenBuilder struct {
	token string
}

func NewCheckAdminTokenBuilder(token string) *CheckAdminTokenBuilder {
	return &CheckAdminTokenBuilder{token: token}
}

func (b *CheckAdminTokenBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if b.token == "" {
			elog.Error("没有配置管理后台 token，拒绝所有请求")
			ctx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		auth := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(auth, bearerPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(b.token)) != 1 {
			elog.Warn("非法访问 admin 接口",
				elog.String("path", ctx.Request.URL.Path),
				elog.String("ip", ctx.ClientIP()))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}
}
