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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/redeemer/internal/email"
	"github.com/ecodeclub/redeemer/internal/email/aliyun"
	"github.com/ecodeclub/redeemer/internal/email/console"
	"github.com/ecodeclub/redeemer/internal/email/failover"
	emailsmtp "github.com/ecodeclub/redeemer/internal/email/gomail"
	"github.com/go-gomail/gomail"
	"github.com/gotomicro/ego/core/econf"
)

type emailConfig struct {
	// Primary 和 Fallback 可选 aliyun、smtp、console
	Primary  string        `yaml:"primary"`
	Fallback string        `yaml:"fallback"`
	Timeout  time.Duration `yaml:"timeout"`
	Aliyun   struct {
		AccessID     string `yaml:"accessId"`
		AccessSecret string `yaml:"accessSecret"`
		AccountName  string `yaml:"accountName"`
	} `yaml:"aliyun"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
}

func InitEmailService() email.Service {
	var cfg emailConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	primary, err := newEmailChannel(cfg.Primary, cfg)
	if err != nil {
		panic(err)
	}
	var fallback email.Service
	if cfg.Fallback != "" {
		fallback, err = newEmailChannel(cfg.Fallback, cfg)
		if err != nil {
			panic(err)
		}
	}
	return failover.NewService(primary, fallback, cfg.Timeout)
}

func newEmailChannel(name string, cfg emailConfig) (email.Service, error) {
	switch name {
	case "aliyun":
		return aliyun.NewDirectMailClient(cfg.Aliyun.AccessID, cfg.Aliyun.AccessSecret,
			cfg.Aliyun.AccountName, cfg.Timeout)
	case "smtp":
		d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		return emailsmtp.NewSMTPClient(d, cfg.SMTP.From), nil
	case "console":
		return console.NewClient(), nil
	case "":
		return nil, errors.New("没有配置邮件渠道")
	default:
		return nil, fmt.Errorf("未知的邮件渠道 %s", name)
	}
}
