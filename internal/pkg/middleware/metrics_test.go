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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	web := NewMetricsBuilder(reg, "web")
	// 两个 server 共用一个 reg 不会重复注册
	admin := NewMetricsBuilder(reg, "admin")

	server := gin.New()
	server.Use(web.Build())
	server.POST("/api/send-code", func(ctx *gin.Context) {
		ctx.Status(http.StatusConflict)
	})
	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/send-code", nil))
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/random/a1b2", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(
		web.counterVec.WithLabelValues(http.MethodPost, "/api/send-code", "409")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		web.counterVec.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(
		admin.counterVec.WithLabelValues(http.MethodPost, "/api/send-code", "409")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["http_requests_total"])
	assert.True(t, names["http_request_duration_seconds"])
}
