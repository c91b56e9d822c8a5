package gomail

import (
	"context"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/email/failover"
	emailmocks "github.com/ecodeclub/redeemer/internal/email/mocks"
	"github.com/go-gomail/gomail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stallingSMTPServer 接受连接但是从不发送欢迎语
func stallingSMTPServer(t *testing.T) *gomail.Dialer {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = l.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	host, portStr, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return gomail.NewDialer(host, port, "", "")
}

func TestSMTPClient_SendMail(t *testing.T) {
	mail := email.Mail{
		From:    "Recurro",
		To:      "to@163.com",
		Subject: "test",
		Body:    []byte("test"),
	}
	testCases := []struct {
		name    string
		ctx     func() (context.Context, context.CancelFunc)
		wantErr error
	}{
		{
			name: "服务端不响应_超时返回",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 200*time.Millisecond)
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "调用方已经取消",
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			wantErr: context.Canceled,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := NewSMTPClient(stallingSMTPServer(t), "noreply@dundinstudio.com")
			ctx, cancel := tc.ctx()
			defer cancel()
			start := time.Now()
			err := c.SendMail(ctx, mail)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Less(t, time.Since(start), 2*time.Second)
		})
	}
}

func TestSMTPClient_FailoverOnStall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mail := email.Mail{
		From:    "Recurro",
		To:      "to@163.com",
		Subject: "test",
		Body:    []byte("test"),
	}
	fallback := emailmocks.NewMockService(ctrl)
	fallback.EXPECT().SendMail(gomock.Any(), mail).Return(nil)

	primary := NewSMTPClient(stallingSMTPServer(t), "noreply@dundinstudio.com")
	svc := failover.NewService(primary, fallback, 300*time.Millisecond)
	start := time.Now()
	err := svc.SendMail(context.Background(), mail)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
