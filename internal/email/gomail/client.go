package gomail

import (
	"context"

	"github.com/go-gomail/gomail"

	"github.com/ecodeclub/redeemer/internal/email"
)

var _ email.Service = (*SMTPClient)(nil)

// SMTPClient 走 SMTP 发送，一般作为备用渠道
type SMTPClient struct {
	d    *gomail.Dialer
	from string
}

func NewSMTPClient(dialer *gomail.Dialer, from string) *SMTPClient {
	if from == "" {
		from = dialer.Username
	}
	return &SMTPClient{
		d:    dialer,
		from: from,
	}
}

func (c *SMTPClient) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.from, mail.From)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", string(mail.Body))

	// gomail 的 Dialer 不支持 context，超时之后放弃等待，后台的连接由 SMTP 服务端断开
	done := make(chan error, 1)
	go func() {
		done <- c.d.DialAndSend(m)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
