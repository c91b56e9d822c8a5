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

// codectl 管理兑换码库存的命令行工具
//
//	codectl --config=config/config.yaml insert --coupon SPRING --platform ios [--expires 2026-12-31] (--inline "A,B" | codes.txt)
//	codectl --config=config/config.yaml report
//	codectl --config=config/config.yaml migrate --coupon SPRING --expires 2026-12-31
//	codectl --config=config/config.yaml restore --coupon SPRING --platform ios
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/ecodeclub/redeemer/internal/redemption"
	"github.com/ecodeclub/redeemer/ioc"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var errUsage = errors.New("用法错误")

func main() {
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if err := loadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := ioc.InitRedis()
	svc := redemption.InitAdminService(ioc.InitDB(), cmd, ioc.InitCache(cmd))

	err := run(ctx, svc, os.Stdout, flag.Arg(0), flag.Args()[1:])
	if errors.Is(err, errUsage) {
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "执行失败: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `用法: codectl [--config=config/config.yaml] <命令> [参数]

命令:
  insert   --coupon C --platform ios|android [--expires YYYY-MM-DD] (--inline "A,B" | 文件)
  report
  migrate  --coupon C --expires YYYY-MM-DD
  restore  --coupon C --platform ios|android`)
}

func loadConfig(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}

func run(ctx context.Context, svc redemption.AdminService, out io.Writer, name string, args []string) error {
	switch name {
	case "insert":
		return runInsert(ctx, svc, out, args)
	case "report":
		return runReport(ctx, svc, out)
	case "migrate":
		return runMigrate(ctx, svc, out, args)
	case "restore":
		return runRestore(ctx, svc, out, args)
	default:
		return fmt.Errorf("%w: 未知命令 %s", errUsage, name)
	}
}

func runInsert(ctx context.Context, svc redemption.AdminService, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("insert", flag.ContinueOnError)
	coupon := fs.String("coupon", "", "优惠码")
	platform := fs.String("platform", "", "ios 或者 android")
	expires := fs.String("expires", "", "活动过期时间，活动不存在时必填")
	inline := fs.String("inline", "", "逗号或者换行分隔的兑换码")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	p, ok := redemption.ParsePlatform(*platform)
	if !ok || *coupon == "" {
		return fmt.Errorf("%w: 必须指定 --coupon 和 --platform", errUsage)
	}

	raw := *inline
	if raw == "" {
		if fs.NArg() != 1 {
			return fmt.Errorf("%w: 需要 --inline 或者一个兑换码文件", errUsage)
		}
		content, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return err
		}
		raw = string(content)
	}
	codes := redemption.SplitCodes(raw)
	if len(codes) == 0 {
		return errors.New("没有可以导入的兑换码")
	}

	var expiresAt time.Time
	if *expires != "" {
		var err error
		expiresAt, err = redemption.ParseExpiry(*expires)
		if err != nil {
			return err
		}
	}
	c, err := svc.EnsureCampaign(ctx, *coupon, expiresAt)
	if err != nil {
		return err
	}
	res, err := svc.InsertCodes(ctx, c.Coupon, p, codes)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "活动 %s (%s 过期) %s: 提供 %d 个，新增 %d 个\n",
		c.Coupon, c.ExpiresTime().Format(time.RFC3339), p.Label(), res.Provided, res.Added)
	return nil
}

func runReport(ctx context.Context, svc redemption.AdminService, out io.Writer) error {
	reports, err := svc.Report(ctx)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(out, "还没有任何活动")
		return nil
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Campaign.Coupon < reports[j].Campaign.Coupon
	})
	for _, r := range reports {
		status := "进行中"
		if r.Expired {
			status = "已过期"
		}
		fmt.Fprintf(out, "%s  过期时间 %s  %s\n", r.Campaign.Coupon,
			r.Campaign.ExpiresTime().Format(time.RFC3339), status)
		for _, p := range redemption.Platforms() {
			fmt.Fprintf(out, "  %-8s 剩余 %d  隔离 %d\n", p.Label(), r.Available[p], r.Orphaned[p])
		}
		fmt.Fprintf(out, "  剩余合计 %d  已领取 %d\n", r.TotalAvailable(), r.Claimed)
	}
	return nil
}

func runMigrate(ctx context.Context, svc redemption.AdminService, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	coupon := fs.String("coupon", "", "老数据归属的优惠码")
	expires := fs.String("expires", "", "活动过期时间")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if *coupon == "" || *expires == "" {
		return fmt.Errorf("%w: 必须指定 --coupon 和 --expires", errUsage)
	}
	expiresAt, err := redemption.ParseExpiry(*expires)
	if err != nil {
		return err
	}
	res, err := svc.MigrateLegacy(ctx, *coupon, expiresAt)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "已迁移到活动 %s\n", res.Campaign.Coupon)
	for _, p := range redemption.Platforms() {
		fmt.Fprintf(out, "  %-8s 兑换码 %d\n", p.Label(), res.Codes[p])
	}
	fmt.Fprintf(out, "  已领取邮箱 %d\n", res.Emails)
	return nil
}

func runRestore(ctx context.Context, svc redemption.AdminService, out io.Writer, args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	coupon := fs.String("coupon", "", "优惠码")
	platform := fs.String("platform", "", "ios 或者 android")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	p, ok := redemption.ParsePlatform(*platform)
	if !ok || *coupon == "" {
		return fmt.Errorf("%w: 必须指定 --coupon 和 --platform", errUsage)
	}
	res, err := svc.RestoreOrphans(ctx, *coupon, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s: 恢复 %d 个，跳过已发放 %d 个\n", *coupon, p.Label(), res.Restored, res.Skipped)
	return nil
}
