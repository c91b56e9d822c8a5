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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ecodeclub/redeemer/internal/redemption"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	expiry := time.Date(2026, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	dir := t.TempDir()
	file := filepath.Join(dir, "codes.txt")
	require.NoError(t, os.WriteFile(file, []byte("F1\nF2,F3\n\nF1\n"), 0o600))

	testCases := []struct {
		name    string
		cmd     string
		args    []string
		svc     *fakeAdminService
		assert  func(t *testing.T, svc *fakeAdminService, out string)
		wantErr error
	}{
		{
			name: "从命令行导入",
			cmd:  "insert",
			args: []string{"--coupon", "spring", "--platform", "iOS", "--expires", "2026-12-31", "--inline", "A, B,A"},
			svc:  &fakeAdminService{added: 2},
			assert: func(t *testing.T, svc *fakeAdminService, out string) {
				assert.Equal(t, "spring", svc.coupon)
				assert.Equal(t, expiry, svc.expiresAt)
				assert.Equal(t, redemption.PlatformIOS, svc.platform)
				assert.Equal(t, []string{"A", "B"}, svc.codes)
				assert.Contains(t, out, "新增 2 个")
			},
		},
		{
			name: "从文件导入",
			cmd:  "insert",
			args: []string{"--coupon", "spring", "--platform", "android", file},
			svc:  &fakeAdminService{added: 3},
			assert: func(t *testing.T, svc *fakeAdminService, out string) {
				assert.True(t, svc.expiresAt.IsZero())
				assert.Equal(t, redemption.PlatformAndroid, svc.platform)
				assert.Equal(t, []string{"F1", "F2", "F3"}, svc.codes)
			},
		},
		{
			name:    "导入时平台非法",
			cmd:     "insert",
			args:    []string{"--coupon", "spring", "--platform", "web", "--inline", "A"},
			svc:     &fakeAdminService{},
			wantErr: errUsage,
		},
		{
			name:    "导入时没有兑换码来源",
			cmd:     "insert",
			args:    []string{"--coupon", "spring", "--platform", "ios"},
			svc:     &fakeAdminService{},
			wantErr: errUsage,
		},
		{
			name: "统计",
			cmd:  "report",
			svc: &fakeAdminService{reports: []redemption.CampaignReport{
				{
					Campaign: redemption.Campaign{Coupon: "SPRING", ExpiresAt: expiry.UnixMilli()},
					Available: map[redemption.Platform]int64{
						redemption.PlatformIOS:     4,
						redemption.PlatformAndroid: 1,
					},
					Orphaned: map[redemption.Platform]int64{},
					Claimed:  9,
				},
			}},
			assert: func(t *testing.T, svc *fakeAdminService, out string) {
				assert.Contains(t, out, "SPRING")
				assert.Contains(t, out, "进行中")
				assert.Contains(t, out, "剩余合计 5  已领取 9")
			},
		},
		{
			name:    "迁移缺少过期时间",
			cmd:     "migrate",
			args:    []string{"--coupon", "spring"},
			svc:     &fakeAdminService{},
			wantErr: errUsage,
		},
		{
			name: "迁移",
			cmd:  "migrate",
			args: []string{"--coupon", "spring", "--expires", "2026-12-31"},
			svc:  &fakeAdminService{},
			assert: func(t *testing.T, svc *fakeAdminService, out string) {
				assert.Equal(t, expiry, svc.expiresAt)
				assert.Contains(t, out, "已迁移到活动 SPRING")
			},
		},
		{
			name: "恢复隔离兑换码",
			cmd:  "restore",
			args: []string{"--coupon", "spring", "--platform", "ios"},
			svc:  &fakeAdminService{},
			assert: func(t *testing.T, svc *fakeAdminService, out string) {
				assert.Equal(t, redemption.PlatformIOS, svc.platform)
				assert.Contains(t, out, "恢复 1 个，跳过已发放 1 个")
			},
		},
		{
			name:    "未知命令",
			cmd:     "delete",
			svc:     &fakeAdminService{},
			wantErr: errUsage,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tc.svc, &out, tc.cmd, tc.args)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.assert != nil {
				tc.assert(t, tc.svc, out.String())
			}
		})
	}
}

type fakeAdminService struct {
	redemption.AdminService

	coupon    string
	expiresAt time.Time
	platform  redemption.Platform
	codes     []string
	added     int64
	reports   []redemption.CampaignReport
}

func (f *fakeAdminService) EnsureCampaign(ctx context.Context, coupon string, expiresAt time.Time) (redemption.Campaign, error) {
	f.coupon, f.expiresAt = coupon, expiresAt
	return redemption.Campaign{Coupon: "SPRING", ExpiresAt: expiresAt.UnixMilli()}, nil
}

func (f *fakeAdminService) InsertCodes(ctx context.Context, coupon string, platform redemption.Platform, codes []string) (redemption.InsertResult, error) {
	f.platform, f.codes = platform, codes
	return redemption.InsertResult{Provided: len(codes), Added: f.added}, nil
}

func (f *fakeAdminService) Report(ctx context.Context) ([]redemption.CampaignReport, error) {
	return f.reports, nil
}

func (f *fakeAdminService) MigrateLegacy(ctx context.Context, coupon string, expiresAt time.Time) (redemption.MigrateResult, error) {
	f.coupon, f.expiresAt = coupon, expiresAt
	return redemption.MigrateResult{
		Campaign: redemption.Campaign{Coupon: "SPRING", ExpiresAt: expiresAt.UnixMilli()},
		Codes:    map[redemption.Platform]int64{},
	}, nil
}

func (f *fakeAdminService) RestoreOrphans(ctx context.Context, coupon string, platform redemption.Platform) (redemption.RestoreResult, error) {
	f.coupon, f.platform = coupon, platform
	return redemption.RestoreResult{Restored: 1, Skipped: 1}, nil
}
