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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	svcmocks "github.com/ecodeclub/redeemer/internal/redemption/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestQuarantineStaleCodesJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.ReconcileService
		wantErr error
	}{
		{
			name: "没有需要隔离的兑换码",
			mock: func(ctrl *gomock.Controller) service.ReconcileService {
				svc := svcmocks.NewMockReconcileService(ctrl)
				svc.EXPECT().QuarantineStale(gomock.Any(), 15*time.Minute).
					Return(service.ReconcileResult{Scanned: 3}, nil)
				return svc
			},
		},
		{
			name: "隔离了部分兑换码",
			mock: func(ctrl *gomock.Controller) service.ReconcileService {
				svc := svcmocks.NewMockReconcileService(ctrl)
				svc.EXPECT().QuarantineStale(gomock.Any(), 15*time.Minute).
					Return(service.ReconcileResult{Scanned: 3, Quarantined: 2}, nil)
				return svc
			},
		},
		{
			name: "执行失败",
			mock: func(ctrl *gomock.Controller) service.ReconcileService {
				svc := svcmocks.NewMockReconcileService(ctrl)
				svc.EXPECT().QuarantineStale(gomock.Any(), 15*time.Minute).
					Return(service.ReconcileResult{}, errMock)
				return svc
			},
			wantErr: errMock,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			j := NewQuarantineStaleCodesJob(tc.mock(ctrl), 15*time.Minute)
			assert.Equal(t, "QuarantineStaleCodesJob", j.Name())
			err := j.Run(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

var errMock = errors.New("mock error")
