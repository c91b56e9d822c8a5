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

package service

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/redemption/internal/domain"
)

type BrandConfig struct {
	// Name 应用名，出现在标题和邮件头部
	Name string `yaml:"name"`
	// Studio 页脚署名
	Studio       string `yaml:"studio"`
	AppStoreID   string `yaml:"appStoreId"`
	PlayPackage  string `yaml:"playPackage"`
	SupportEmail string `yaml:"supportEmail"`
	Website      string `yaml:"website"`
}

type messages struct {
	// Subject 两个占位符依次是应用名和平台
	Subject      string
	Intro        string
	CopyHint     string
	RedeemNow    string
	Download     string
	HowToTitle   string
	IOSSteps     []template.HTML
	AndroidSteps []template.HTML
	KeepSafe     string
	Questions    string
}

var localeMessages = map[domain.Locale]messages{
	domain.LocaleEN: {
		Subject:    "Your %s Redeem Code (%s)",
		Intro:      "Here is your redeem code for",
		CopyHint:   "Long press the code to copy",
		RedeemNow:  "Redeem Now",
		Download:   "Download %s for %s",
		HowToTitle: "Or enter your code manually",
		IOSSteps: []template.HTML{
			"Open the <strong>App Store</strong>",
			"Tap your profile icon (top right)",
			"Tap <strong>Redeem Gift Card or Code</strong>",
			"Tap <strong>Enter Code Manually</strong> and paste your code",
		},
		AndroidSteps: []template.HTML{
			"Open the <strong>Google Play Store</strong>",
			"Tap the profile icon (top right)",
			"Tap <strong>Payments &amp; subscriptions</strong> &rarr; <strong>Redeem code</strong>",
			"Paste your code and confirm",
		},
		KeepSafe:  "This code is unique to you. Please keep it safe.",
		Questions: "Need help? Contact us at",
	},
	domain.LocaleKO: {
		Subject:    "%s 리딤 코드 (%s)",
		Intro:      "요청하신 리딤 코드입니다. 플랫폼:",
		CopyHint:   "코드를 길게 눌러 복사하세요",
		RedeemNow:  "지금 사용하기",
		Download:   "%s %s 버전 다운로드",
		HowToTitle: "또는 코드를 직접 입력하세요",
		IOSSteps: []template.HTML{
			"<strong>App Store</strong>를 엽니다",
			"오른쪽 위 프로필 아이콘을 누릅니다",
			"<strong>기프트 카드 또는 코드 사용</strong>을 누릅니다",
			"<strong>수동으로 코드 입력</strong>을 누르고 코드를 붙여 넣습니다",
		},
		AndroidSteps: []template.HTML{
			"<strong>Google Play 스토어</strong>를 엽니다",
			"오른쪽 위 프로필 아이콘을 누릅니다",
			"<strong>결제 및 구독</strong> &rarr; <strong>코드 사용</strong>을 누릅니다",
			"코드를 붙여 넣고 확인합니다",
		},
		KeepSafe:  "이 코드는 회원님만을 위한 코드입니다. 안전하게 보관해 주세요.",
		Questions: "도움이 필요하신가요? 문의:",
	},
}

const mailTemplate = `<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 480px; margin: 0 auto; padding: 40px 24px;">
<h1 style="font-size: 24px; font-weight: 700; color: #1a1a1a; margin-bottom: 8px;">{{.Brand.Name}}</h1>
<p style="font-size: 16px; color: #555; margin-bottom: 32px;">{{.Msg.Intro}} <strong>{{.PlatformLabel}}</strong>:</p>
<div style="background: linear-gradient(135deg, #6366f1, #a855f7); border-radius: 12px; padding: 24px; text-align: center; margin-bottom: 8px;">
<span style="font-size: 18px; font-weight: 700; color: #fff; letter-spacing: 2px; word-break: break-all;">{{.Code}}</span>
</div>
<p style="font-size: 12px; color: #9b9bab; text-align: center; margin-bottom: 24px;">{{.Msg.CopyHint}}</p>
<a href="{{.RedeemLink}}" target="_blank" style="display: block; padding: 16px 32px; background-color: #6c3ce0; color: #ffffff; font-size: 17px; font-weight: 700; text-decoration: none; text-align: center; border-radius: 28px;">{{.Msg.RedeemNow}}</a>
<h2 style="font-size: 16px; color: #1a1a1a; margin-top: 32px;">{{.Msg.HowToTitle}}</h2>
<ol style="font-size: 14px; color: #555; line-height: 1.8;">
{{range .Steps}}<li>{{.}}</li>
{{end}}</ol>
<p style="font-size: 14px;"><a href="{{.DownloadLink}}" target="_blank" style="color: #6c3ce0;">{{.DownloadText}}</a></p>
<p style="font-size: 13px; color: #888; line-height: 1.6;">{{.Msg.KeepSafe}}{{if .Brand.SupportEmail}}<br/>{{.Msg.Questions}} <a href="mailto:{{.Brand.SupportEmail}}">{{.Brand.SupportEmail}}</a>{{end}}</p>
<div style="border-top: 1px solid #eee; margin: 32px 0;"></div>
<p style="font-size: 12px; color: #aaa;">{{if .Brand.Website}}<a href="{{.Brand.Website}}" style="color: #aaa;">{{.Brand.Studio}}</a>{{else}}{{.Brand.Studio}}{{end}}</p>
</div>`

// MessageComposer 负责兑换码邮件的内容，和发送渠道无关
type MessageComposer struct {
	brand BrandConfig
	tpl   *template.Template
}

func NewMessageComposer(brand BrandConfig) (*MessageComposer, error) {
	tpl, err := template.New("redeem-code").Parse(mailTemplate)
	if err != nil {
		return nil, fmt.Errorf("解析邮件模板失败: %w", err)
	}
	return &MessageComposer{brand: brand, tpl: tpl}, nil
}

func (c *MessageComposer) Compose(to string, locale domain.Locale, platform domain.Platform, code string) (email.Mail, error) {
	msg, ok := localeMessages[locale]
	if !ok {
		msg = localeMessages[domain.LocaleEN]
	}
	steps := msg.IOSSteps
	if platform == domain.PlatformAndroid {
		steps = msg.AndroidSteps
	}
	data := struct {
		Brand         BrandConfig
		Msg           messages
		PlatformLabel string
		Code          string
		RedeemLink    string
		DownloadLink  string
		DownloadText  string
		Steps         []template.HTML
	}{
		Brand:         c.brand,
		Msg:           msg,
		PlatformLabel: platform.Label(),
		Code:          code,
		RedeemLink:    c.RedeemLink(platform, code),
		DownloadLink:  c.DownloadLink(platform),
		DownloadText:  fmt.Sprintf(msg.Download, c.brand.Name, platform.Label()),
		Steps:         steps,
	}
	var buf bytes.Buffer
	if err := c.tpl.Execute(&buf, data); err != nil {
		return email.Mail{}, fmt.Errorf("渲染邮件模板失败: %w", err)
	}
	return email.Mail{
		From:    c.brand.Name,
		To:      to,
		Subject: fmt.Sprintf(msg.Subject, c.brand.Name, platform.Label()),
		Body:    buf.Bytes(),
	}, nil
}

// RedeemLink 打开商店之后直接进入兑换页面
func (c *MessageComposer) RedeemLink(platform domain.Platform, code string) string {
	if platform == domain.PlatformIOS {
		q := url.Values{}
		q.Set("ctx", "offercodes")
		q.Set("id", c.brand.AppStoreID)
		q.Set("code", code)
		return "https://apps.apple.com/redeem?" + q.Encode()
	}
	return "https://play.google.com/redeem?code=" + url.QueryEscape(code)
}

func (c *MessageComposer) DownloadLink(platform domain.Platform) string {
	if platform == domain.PlatformIOS {
		return "https://apps.apple.com/app/id" + c.brand.AppStoreID
	}
	return "https://play.google.com/store/apps/details?id=" + url.QueryEscape(c.brand.PlayPackage)
}
