package aliyun

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/pkg/errors"

	"github.com/ecodeclub/redeemer/internal/email"
)

var _ email.Service = (*DirectMailClient)(nil)

// DirectMailClient 阿里云邮件推送
type DirectMailClient struct {
	client *dm20151123.Client
	// accountName 发信地址，例如 noreply@dundinstudio.com
	accountName string
	timeout     time.Duration
}

// NewDirectMailClient 创建阿里云邮件推送客户端
// timeout 同时作为连接超时和读超时，SDK 本身不感知 context
func NewDirectMailClient(accessKeyID, accessKeySecret, accountName string, timeout time.Duration) (*DirectMailClient, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}

	return &DirectMailClient{
		client:      client,
		accountName: accountName,
		timeout:     timeout,
	}, nil
}

func (a *DirectMailClient) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(a.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	ms := int(a.timeout.Milliseconds())
	runtime := &util.RuntimeOptions{
		// 不在 SDK 内部重试，否则同一封邮件可能被投递多次
		Autoretry:      tea.Bool(false),
		ConnectTimeout: tea.Int(ms),
		ReadTimeout:    tea.Int(ms),
	}
	_, err := a.client.SingleSendMailAdvance(request, runtime)
	if err != nil {
		return a.handleError(err)
	}
	return nil
}

// handleError 把 SDK 错误整理成一行可读的信息，只用于日志
func (a *DirectMailClient) handleError(err error) error {
	sdkError, ok := err.(*tea.SDKError)
	if !ok {
		return errors.WithMessage(err, "阿里云邮件发送失败")
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var data map[string]any
		decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
		if decoder.Decode(&data) == nil {
			if recommend, exists := data["Recommend"]; exists {
				msg += fmt.Sprintf(" | 建议: %v", recommend)
			}
			if requestID, exists := data["RequestId"]; exists {
				msg += fmt.Sprintf(" | RequestId: %v", requestID)
			}
		}
	}
	return errors.WithMessage(err, msg)
}
