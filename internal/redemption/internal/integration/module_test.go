//go:build e2e

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

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/errs"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/event"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/cache"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/repository/dao"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/service"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/web"
	testioc "github.com/ecodeclub/redeemer/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const coupon = "SPRING"

type RedemptionTestSuite struct {
	suite.Suite
	db  *egorm.Component
	cmd redis.Cmdable

	campaignRepo  repository.CampaignRepository
	inventoryRepo repository.InventoryRepository
	ledgerRepo    repository.LedgerRepository
	adminSvc      service.AdminService
	reconcileSvc  service.ReconcileService
}

func TestRedemption(t *testing.T) {
	suite.Run(t, new(RedemptionTestSuite))
}

func (s *RedemptionTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.cmd = testioc.InitRedis()
	s.campaignRepo = repository.NewCampaignRepository(
		dao.NewGORMCampaignDAO(s.db),
		cache.NewCampaignECache(testioc.InitCache(), time.Minute))
	s.inventoryRepo = repository.NewInventoryRepository(dao.NewRedisInventoryDAO(s.cmd))
	s.ledgerRepo = repository.NewLedgerRepository(dao.NewRedisLedgerDAO(s.cmd))
	s.adminSvc = service.NewAdminService(s.campaignRepo, s.inventoryRepo, s.ledgerRepo)
	s.reconcileSvc = service.NewReconcileService(s.inventoryRepo)
}

func (s *RedemptionTestSuite) SetupTest() {
	_, err := s.adminSvc.SaveCampaign(context.Background(), coupon, time.Now().Add(24*time.Hour))
	require.NoError(s.T(), err)
}

func (s *RedemptionTestSuite) TearDownTest() {
	ctx := context.Background()
	err := s.db.Exec("TRUNCATE TABLE `campaigns`").Error
	require.NoError(s.T(), err)
	for _, pattern := range []string{"codes:*", "redeemer:*"} {
		keys, err := s.cmd.Keys(ctx, pattern).Result()
		require.NoError(s.T(), err)
		if len(keys) > 0 {
			require.NoError(s.T(), s.cmd.Del(ctx, keys...).Err())
		}
	}
}

func (s *RedemptionTestSuite) newRedeemService(mailer email.Service, reservation bool) service.RedeemService {
	composer, err := service.NewMessageComposer(service.BrandConfig{
		Name:        "Recurro",
		Studio:      "Dundin Studio",
		AppStoreID:  "6748042726",
		PlayPackage: "com.dundinstudio.recurro",
	})
	require.NoError(s.T(), err)
	producer, err := event.NewRedeemedEventProducer(testioc.InitMQ())
	require.NoError(s.T(), err)
	return service.NewRedeemService(s.campaignRepo, s.inventoryRepo, s.ledgerRepo,
		mailer, composer, producer, service.Config{
			BypassEmails: []string{"tester@example.com"},
			Reservation:  reservation,
		})
}

func (s *RedemptionTestSuite) insert(platform domain.Platform, codes ...string) {
	res, err := s.adminSvc.InsertCodes(context.Background(), coupon, platform, codes)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(len(codes)), res.Added)
}

func (s *RedemptionTestSuite) available(platform domain.Platform) int64 {
	cnt, err := s.inventoryRepo.Available(context.Background(), coupon, platform)
	require.NoError(s.T(), err)
	return cnt
}

func (s *RedemptionTestSuite) pendingCount() int64 {
	cnt, err := s.cmd.HLen(context.Background(), "codes:pending").Result()
	require.NoError(s.T(), err)
	return cnt
}

func (s *RedemptionTestSuite) TestSendCode() {
	s.insert(domain.PlatformIOS, "X1")
	mailer := &recordingMailer{}
	server := gin.New()
	web.NewHandler(s.newRedeemService(mailer, false), prometheus.NewRegistry()).PublicRoutes(server)

	testCases := []struct {
		name     string
		body     string
		wantCode int
		wantResp web.SendCodeResp
	}{
		{
			name:     "第一次领取",
			body:     `{"email":" User@Example.com ","platform":"ios","coupon":"spring"}`,
			wantCode: http.StatusOK,
			wantResp: web.SendCodeResp{Success: true},
		},
		{
			name:     "同一个邮箱再次领取",
			body:     `{"email":"user@example.com","platform":"ios","coupon":"SPRING"}`,
			wantCode: http.StatusConflict,
			wantResp: web.SendCodeResp{
				Error:   "ALREADY_CLAIMED",
				Message: errs.AlreadyClaimed.Message("en"),
			},
		},
		{
			name:     "兑换码已经发完",
			body:     `{"email":"other@example.com","platform":"ios","coupon":"SPRING","locale":"ko"}`,
			wantCode: http.StatusGone,
			wantResp: web.SendCodeResp{
				Error:   "NO_CODES_LEFT",
				Message: errs.NoCodesLeft.Message("ko"),
			},
		},
		{
			name:     "优惠码不存在",
			body:     `{"email":"other@example.com","platform":"ios","coupon":"AUTUMN"}`,
			wantCode: http.StatusNotFound,
			wantResp: web.SendCodeResp{
				Error:   "INVALID_COUPON",
				Message: errs.CouponNotFound.Message("en"),
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/send-code", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			var resp web.SendCodeResp
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, tc.wantResp, resp)
		})
	}

	t := s.T()
	mails := mailer.sent()
	require.Len(t, mails, 1)
	assert.Equal(t, "user@example.com", mails[0].To)
	assert.Contains(t, string(mails[0].Body), "X1")

	a, err := s.ledgerRepo.FindAssignment(context.Background(), "X1")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", a.Email)
	assert.Equal(t, coupon, a.Coupon)
	assert.Equal(t, domain.PlatformIOS, a.Platform)
	assert.Equal(t, int64(0), s.pendingCount())
}

// 池子里只有 A、B 两个兑换码，x 领取成功，x 重复领取，y 发送邮件失败
func (s *RedemptionTestSuite) TestTwoCodesThreeRequests() {
	for _, reservation := range []bool{false, true} {
		s.T().Run(fmt.Sprintf("reservation=%v", reservation), func(t *testing.T) {
			s.TearDownTest()
			s.SetupTest()
			ctx := context.Background()
			s.insert(domain.PlatformIOS, "A", "B")
			mailer := &recordingMailer{failTo: "y@example.com", err: errors.New("smtp 超时")}
			svc := s.newRedeemService(mailer, reservation)

			err := svc.Redeem(ctx, domain.RedeemRequest{Email: "x@example.com", Platform: "ios", Coupon: coupon})
			require.NoError(t, err)
			assert.Equal(t, int64(1), s.available(domain.PlatformIOS))

			err = svc.Redeem(ctx, domain.RedeemRequest{Email: "x@example.com", Platform: "ios", Coupon: coupon})
			assert.ErrorIs(t, err, errs.AlreadyClaimed)
			assert.Equal(t, int64(1), s.available(domain.PlatformIOS))

			err = svc.Redeem(ctx, domain.RedeemRequest{Email: "y@example.com", Platform: "ios", Coupon: coupon})
			assert.ErrorIs(t, err, errs.EmailSendFailed)
			assert.Equal(t, int64(1), s.available(domain.PlatformIOS))
			assert.Equal(t, int64(0), s.pendingCount())

			members, err := s.cmd.SMembers(ctx, "codes:emails:"+coupon).Result()
			require.NoError(t, err)
			assert.Equal(t, []string{"x@example.com"}, members)
			mails := mailer.sent()
			require.Len(t, mails, 1)
			assert.Equal(t, "x@example.com", mails[0].To)
		})
	}
}

func (s *RedemptionTestSuite) TestDedupAcrossPlatforms() {
	for _, reservation := range []bool{false, true} {
		s.T().Run(fmt.Sprintf("reservation=%v", reservation), func(t *testing.T) {
			s.TearDownTest()
			s.SetupTest()
			ctx := context.Background()
			s.insert(domain.PlatformIOS, "X1")
			s.insert(domain.PlatformAndroid, "Y1")
			svc := s.newRedeemService(&recordingMailer{}, reservation)

			err := svc.Redeem(ctx, domain.RedeemRequest{Email: "user@example.com", Platform: "ios", Coupon: coupon})
			require.NoError(t, err)
			err = svc.Redeem(ctx, domain.RedeemRequest{Email: "USER@example.com", Platform: "android", Coupon: coupon})
			assert.ErrorIs(t, err, errs.AlreadyClaimed)
			assert.Equal(t, int64(1), s.available(domain.PlatformAndroid))
		})
	}
}

func (s *RedemptionTestSuite) TestExpiredCampaign() {
	t := s.T()
	_, err := s.adminSvc.SaveCampaign(context.Background(), coupon, time.Now().Add(-time.Millisecond))
	require.NoError(t, err)
	s.insert(domain.PlatformIOS, "X1")

	svc := s.newRedeemService(&recordingMailer{}, false)
	err = svc.Redeem(context.Background(), domain.RedeemRequest{
		Email: "user@example.com", Platform: "ios", Coupon: coupon,
	})
	assert.ErrorIs(t, err, errs.CouponExpired)
	assert.Equal(t, int64(1), s.available(domain.PlatformIOS))
}

func (s *RedemptionTestSuite) TestConcurrentExhaustion() {
	t := s.T()
	const total, users = 10, 50
	codes := make([]string, 0, total)
	for i := 0; i < total; i++ {
		codes = append(codes, fmt.Sprintf("C%02d", i))
	}
	s.insert(domain.PlatformAndroid, codes...)
	svc := s.newRedeemService(&recordingMailer{}, false)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		empty   int
	)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := svc.Redeem(context.Background(), domain.RedeemRequest{
				Email:    fmt.Sprintf("user%d@example.com", i),
				Platform: "android",
				Coupon:   coupon,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, errs.NoCodesLeft):
				empty++
			default:
				t.Errorf("意外的错误 %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, total, success)
	assert.Equal(t, users-total, empty)
	assert.Equal(t, int64(0), s.available(domain.PlatformAndroid))
	claimed, err := s.ledgerRepo.ClaimedCount(context.Background(), coupon)
	require.NoError(t, err)
	assert.Equal(t, int64(total), claimed)

	emails := make(map[string]struct{}, total)
	for _, code := range codes {
		a, err := s.ledgerRepo.FindAssignment(context.Background(), code)
		require.NoError(t, err)
		emails[a.Email] = struct{}{}
	}
	assert.Len(t, emails, total)
}

func (s *RedemptionTestSuite) TestSendFailureReturnsCode() {
	t := s.T()
	s.insert(domain.PlatformIOS, "X1")
	svc := s.newRedeemService(&recordingMailer{err: errors.New("smtp 超时")}, true)

	err := svc.Redeem(context.Background(), domain.RedeemRequest{
		Email: "user@example.com", Platform: "ios", Coupon: coupon,
	})
	assert.ErrorIs(t, err, errs.EmailSendFailed)
	assert.Equal(t, int64(1), s.available(domain.PlatformIOS))
	assert.Equal(t, int64(0), s.pendingCount())
	claimed, err := s.ledgerRepo.HasClaimed(context.Background(), coupon, "user@example.com")
	require.NoError(t, err)
	assert.False(t, claimed)

	// 预占已经释放，可以重试
	err = s.newRedeemService(&recordingMailer{}, true).Redeem(context.Background(), domain.RedeemRequest{
		Email: "user@example.com", Platform: "ios", Coupon: coupon,
	})
	assert.NoError(t, err)
}

func (s *RedemptionTestSuite) TestReservationSameEmail() {
	t := s.T()
	s.insert(domain.PlatformIOS, "X1", "X2", "X3")
	svc := s.newRedeemService(&recordingMailer{delay: 100 * time.Millisecond}, true)

	const attempts = 5
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		claimed int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.Redeem(context.Background(), domain.RedeemRequest{
				Email: "user@example.com", Platform: "ios", Coupon: coupon,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, errs.AlreadyClaimed):
				claimed++
			default:
				t.Errorf("意外的错误 %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, attempts-1, claimed)
	assert.Equal(t, int64(2), s.available(domain.PlatformIOS))
}

func (s *RedemptionTestSuite) TestBypassEmail() {
	t := s.T()
	s.insert(domain.PlatformIOS, "X1", "X2")
	svc := s.newRedeemService(&recordingMailer{}, true)
	for i := 0; i < 2; i++ {
		err := svc.Redeem(context.Background(), domain.RedeemRequest{
			Email: "Tester@Example.com", Platform: "ios", Coupon: coupon,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(0), s.available(domain.PlatformIOS))
}

func (s *RedemptionTestSuite) TestBulkInsertIdempotent() {
	t := s.T()
	ctx := context.Background()
	res, err := s.adminSvc.InsertCodes(ctx, coupon, domain.PlatformIOS, []string{"A", " B ", "A", ""})
	require.NoError(t, err)
	assert.Equal(t, service.InsertResult{Provided: 2, Added: 2}, res)

	res, err = s.adminSvc.InsertCodes(ctx, coupon, domain.PlatformIOS, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Added)

	require.NoError(t, s.newRedeemService(&recordingMailer{}, false).Redeem(ctx, domain.RedeemRequest{
		Email: "user@example.com", Platform: "ios", Coupon: coupon,
	}))
	// 已经发出去的兑换码不能再次入库
	res, err = s.adminSvc.InsertCodes(ctx, coupon, domain.PlatformIOS, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Added)
	assert.Equal(t, int64(1), s.available(domain.PlatformIOS))
}

func (s *RedemptionTestSuite) TestMigrateLegacy() {
	t := s.T()
	ctx := context.Background()
	require.NoError(t, s.cmd.SAdd(ctx, "codes:ios:available", "L1", "L2").Err())
	require.NoError(t, s.cmd.SAdd(ctx, "codes:android:available", "L3").Err())
	require.NoError(t, s.cmd.SAdd(ctx, "codes:emails", "old@example.com").Err())

	expiresAt := time.Now().Add(48 * time.Hour)
	res, err := s.adminSvc.MigrateLegacy(ctx, "legacy", expiresAt)
	require.NoError(t, err)
	assert.Equal(t, "LEGACY", res.Campaign.Coupon)
	assert.Equal(t, map[domain.Platform]int64{
		domain.PlatformIOS:     2,
		domain.PlatformAndroid: 1,
	}, res.Codes)
	assert.Equal(t, int64(1), res.Emails)

	for _, key := range []string{"codes:ios:available", "codes:android:available", "codes:emails"} {
		n, err := s.cmd.Exists(ctx, key).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(0), n, key)
	}
	cnt, err := s.inventoryRepo.Available(ctx, "LEGACY", domain.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	err = s.newRedeemService(&recordingMailer{}, false).Redeem(ctx, domain.RedeemRequest{
		Email: "old@example.com", Platform: "ios", Coupon: "legacy",
	})
	assert.ErrorIs(t, err, errs.AlreadyClaimed)
}

func (s *RedemptionTestSuite) TestQuarantineAndRestore() {
	t := s.T()
	ctx := context.Background()
	s.insert(domain.PlatformIOS, "X1", "X2")

	// 模拟取码之后进程崩溃
	first, err := s.inventoryRepo.Withdraw(ctx, coupon, domain.PlatformIOS, "a@example.com")
	require.NoError(t, err)
	second, err := s.inventoryRepo.Withdraw(ctx, coupon, domain.PlatformIOS, "b@example.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	res, err := s.reconcileSvc.QuarantineStale(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, service.ReconcileResult{Scanned: 2, Quarantined: 2}, res)
	assert.Equal(t, int64(0), s.pendingCount())
	orphaned, err := s.inventoryRepo.Orphaned(ctx, coupon, domain.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, int64(2), orphaned)

	// 人工核对发现 first 已经送达
	require.NoError(t, s.ledgerRepo.Commit(ctx, domain.Assignment{
		Code:     first,
		Email:    "a@example.com",
		Platform: domain.PlatformIOS,
		Coupon:   coupon,
		SentAt:   time.Now(),
	}, ""))

	restored, err := s.adminSvc.RestoreOrphans(ctx, coupon, domain.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, domain.RestoreResult{Restored: 1, Skipped: 1}, restored)
	members, err := s.cmd.SMembers(ctx, "codes:SPRING:ios:available").Result()
	require.NoError(t, err)
	assert.Equal(t, []string{second}, members)
}

func (s *RedemptionTestSuite) TestReport() {
	t := s.T()
	ctx := context.Background()
	s.insert(domain.PlatformIOS, "X1", "X2")
	s.insert(domain.PlatformAndroid, "Y1")
	require.NoError(t, s.newRedeemService(&recordingMailer{}, false).Redeem(ctx, domain.RedeemRequest{
		Email: "user@example.com", Platform: "android", Coupon: coupon,
	}))

	reports, err := s.adminSvc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, coupon, r.Campaign.Coupon)
	assert.False(t, r.Expired)
	assert.Equal(t, int64(2), r.Available[domain.PlatformIOS])
	assert.Equal(t, int64(0), r.Available[domain.PlatformAndroid])
	assert.Equal(t, int64(2), r.TotalAvailable())
	assert.Equal(t, int64(1), r.Claimed)
}

type recordingMailer struct {
	mu    sync.Mutex
	mails []email.Mail
	err   error
	// failTo 不为空的时候只有发给这个邮箱的邮件会失败
	failTo string
	delay  time.Duration
}

func (m *recordingMailer) SendMail(ctx context.Context, mail email.Mail) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if m.err != nil && (m.failTo == "" || m.failTo == mail.To) {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mails = append(m.mails, mail)
	return nil
}

func (m *recordingMailer) sent() []email.Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Mail(nil), m.mails...)
}
