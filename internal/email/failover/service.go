package failover

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/gotomicro/ego/core/elog"
	"go.uber.org/multierr"
)

var ErrAllChannelsFailed = errors.New("所有邮件渠道都发送失败")

var _ email.Service = (*Service)(nil)

// Service 先走主渠道，失败了再走备用渠道，任意一个成功即成功。
// 注意：渠道本地超时但异步投递成功时，这里依旧会返回失败。
type Service struct {
	channels []channel
	// 单个渠道的超时时间
	timeout time.Duration
	logger  *elog.Component
}

type channel struct {
	name string
	svc  email.Service
}

// NewService fallback 可以为 nil
func NewService(primary, fallback email.Service, timeout time.Duration) *Service {
	channels := []channel{{name: "primary", svc: primary}}
	if fallback != nil {
		channels = append(channels, channel{name: "fallback", svc: fallback})
	}
	return &Service{
		channels: channels,
		timeout:  timeout,
		logger:   elog.DefaultLogger,
	}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	var errs error
	for _, ch := range s.channels {
		err := s.send(ctx, ch.svc, mail)
		if err == nil {
			return nil
		}
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", ch.name, err))
		s.logger.Warn("邮件渠道发送失败",
			elog.String("channel", ch.name),
			elog.String("to", mail.To),
			elog.FieldErr(err))
		// 调用方已经放弃，不再尝试后续渠道
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("%w: %w", ErrAllChannelsFailed, errs)
}

func (s *Service) send(ctx context.Context, svc email.Service, mail email.Mail) error {
	if s.timeout <= 0 {
		return svc.SendMail(ctx, mail)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return svc.SendMail(ctx, mail)
}
