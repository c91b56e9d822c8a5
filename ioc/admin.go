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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/redeemer/internal/pkg/middleware"
	"github.com/ecodeclub/redeemer/internal/redemption"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

func InitAdminServer(hdl *redemption.AdminHandler, reg prometheus.Registerer) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder(reg, "admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(middleware.NewCheckAdminTokenBuilder(econf.GetString("admin.token")).Build())
	hdl.PrivateRoutes(res.Engine)
	return res
}
