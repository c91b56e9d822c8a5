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

package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrInventoryEmpty = errors.New("兑换码库存为空")

// insertBatchSize 单次脚本处理的兑换码数量上限，避免长时间阻塞 Redis
const insertBatchSize = 500

var (
	// KEYS[1] 可用集合 KEYS[2] 待确认 hash KEYS[3] 隔离集合
	// ARGV[1] 发放记录 key 前缀 ARGV[2...] 兑换码
	// 已经发放、正在发放或者被隔离的兑换码都不能再进入库存
	insertScript = redis.NewScript(`
local added = 0
for i = 2, #ARGV do
	local code = ARGV[i]
	if redis.call('EXISTS', ARGV[1] .. code) == 0
		and redis.call('HEXISTS', KEYS[2], code) == 0
		and redis.call('SISMEMBER', KEYS[3], code) == 0 then
		added = added + redis.call('SADD', KEYS[1], code)
	end
end
return added
`)

	// KEYS[1] 可用集合 KEYS[2] 待确认 hash
	// ARGV[1] 待确认记录
	withdrawScript = redis.NewScript(`
local code = redis.call('SPOP', KEYS[1])
if not code then
	return false
end
redis.call('HSET', KEYS[2], code, ARGV[1])
return code
`)

	// KEYS[1] 可用集合 KEYS[2] 待确认 hash
	// ARGV[1] 兑换码
	// 只有处于待确认状态的兑换码才能退回，保证一次取出最多退回一次
	returnScript = redis.NewScript(`
if redis.call('HDEL', KEYS[2], ARGV[1]) == 0 then
	return 0
end
redis.call('SADD', KEYS[1], ARGV[1])
return 1
`)

	// KEYS[1] 待确认 hash KEYS[2] 隔离集合
	// ARGV[1] 兑换码 ARGV[2] 早于该时间点(毫秒)的才算超时 ARGV[3] coupon ARGV[4] platform
	quarantineScript = redis.NewScript(`
local raw = redis.call('HGET', KEYS[1], ARGV[1])
if not raw then
	return 0
end
local rec = cjson.decode(raw)
if rec.coupon ~= ARGV[3] or rec.platform ~= ARGV[4] then
	return 0
end
if tonumber(rec.withdrawnAt) >= tonumber(ARGV[2]) then
	return 0
end
redis.call('HDEL', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[1])
return 1
`)

	// KEYS[1] 隔离集合 KEYS[2] 可用集合
	// ARGV[1] 发放记录 key 前缀
	restoreScript = redis.NewScript(`
local codes = redis.call('SMEMBERS', KEYS[1])
local restored = 0
local skipped = 0
for _, code in ipairs(codes) do
	redis.call('SREM', KEYS[1], code)
	if redis.call('EXISTS', ARGV[1] .. code) == 0 then
		restored = restored + redis.call('SADD', KEYS[2], code)
	else
		skipped = skipped + 1
	end
end
return {restored, skipped}
`)
)

type InventoryDAO interface {
	// Insert 返回真正新增的数量
	Insert(ctx context.Context, coupon, platform string, codes []string) (int64, error)
	// Withdraw 取出一个兑换码，同时写入待确认记录；库存为空返回 ErrInventoryEmpty
	Withdraw(ctx context.Context, p PendingCode) (string, error)
	// Return 退回兑换码，返回 false 说明这个兑换码已经不在待确认状态
	Return(ctx context.Context, coupon, platform, code string) (bool, error)
	Available(ctx context.Context, coupon, platform string) (int64, error)
	Orphaned(ctx context.Context, coupon, platform string) (int64, error)
	ScanPending(ctx context.Context, cursor uint64, count int64) ([]PendingCode, uint64, error)
	// Quarantine 把超时的待确认记录挪到隔离集合
	Quarantine(ctx context.Context, p PendingCode, staleBefore int64) (bool, error)
	RestoreOrphans(ctx context.Context, coupon, platform string) (restored int64, skipped int64, err error)
	// MergeLegacy 把没有区分活动的老库存并入指定活动，返回老库存的数量
	MergeLegacy(ctx context.Context, coupon, platform string) (int64, error)
}

type redisInventoryDAO struct {
	cmd redis.Cmdable
}

func NewRedisInventoryDAO(cmd redis.Cmdable) InventoryDAO {
	return &redisInventoryDAO{cmd: cmd}
}

func (d *redisInventoryDAO) Insert(ctx context.Context, coupon, platform string, codes []string) (int64, error) {
	keys := []string{availableKey(coupon, platform), pendingKey, orphanedKey(coupon, platform)}
	var total int64
	for start := 0; start < len(codes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(codes))
		args := make([]any, 0, end-start+1)
		args = append(args, assignedKeyPrefix)
		for _, code := range codes[start:end] {
			args = append(args, code)
		}
		added, err := insertScript.Run(ctx, d.cmd, keys, args...).Int64()
		if err != nil {
			return total, fmt.Errorf("写入兑换码失败: %w", err)
		}
		total += added
	}
	return total, nil
}

func (d *redisInventoryDAO) Withdraw(ctx context.Context, p PendingCode) (string, error) {
	val, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	code, err := withdrawScript.Run(ctx, d.cmd,
		[]string{availableKey(p.Coupon, p.Platform), pendingKey}, val).Text()
	if errors.Is(err, redis.Nil) {
		return "", ErrInventoryEmpty
	}
	return code, err
}

func (d *redisInventoryDAO) Return(ctx context.Context, coupon, platform, code string) (bool, error) {
	res, err := returnScript.Run(ctx, d.cmd,
		[]string{availableKey(coupon, platform), pendingKey}, code).Int64()
	return res == 1, err
}

func (d *redisInventoryDAO) Available(ctx context.Context, coupon, platform string) (int64, error) {
	return d.cmd.SCard(ctx, availableKey(coupon, platform)).Result()
}

func (d *redisInventoryDAO) Orphaned(ctx context.Context, coupon, platform string) (int64, error) {
	return d.cmd.SCard(ctx, orphanedKey(coupon, platform)).Result()
}

func (d *redisInventoryDAO) ScanPending(ctx context.Context, cursor uint64, count int64) ([]PendingCode, uint64, error) {
	kvs, next, err := d.cmd.HScan(ctx, pendingKey, cursor, "", count).Result()
	if err != nil {
		return nil, 0, err
	}
	res := make([]PendingCode, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		var p PendingCode
		// 格式不对的记录跳过，留给人工处理
		if json.Unmarshal([]byte(kvs[i+1]), &p) != nil {
			continue
		}
		p.Code = kvs[i]
		res = append(res, p)
	}
	return res, next, nil
}

func (d *redisInventoryDAO) Quarantine(ctx context.Context, p PendingCode, staleBefore int64) (bool, error) {
	res, err := quarantineScript.Run(ctx, d.cmd,
		[]string{pendingKey, orphanedKey(p.Coupon, p.Platform)},
		p.Code, staleBefore, p.Coupon, p.Platform).Int64()
	return res == 1, err
}

func (d *redisInventoryDAO) RestoreOrphans(ctx context.Context, coupon, platform string) (int64, int64, error) {
	res, err := restoreScript.Run(ctx, d.cmd,
		[]string{orphanedKey(coupon, platform), availableKey(coupon, platform)},
		assignedKeyPrefix).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("恢复隔离兑换码返回值异常: %v", res)
	}
	return res[0], res[1], nil
}

func (d *redisInventoryDAO) MergeLegacy(ctx context.Context, coupon, platform string) (int64, error) {
	legacy := legacyAvailableKey(platform)
	dst := availableKey(coupon, platform)
	var moved *redis.IntCmd
	_, err := d.cmd.TxPipelined(ctx, func(p redis.Pipeliner) error {
		moved = p.SCard(ctx, legacy)
		p.SUnionStore(ctx, dst, dst, legacy)
		p.Del(ctx, legacy)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved.Val(), nil
}

// PendingCode 兑换码本身是 hash 的 field，不进入 value
type PendingCode struct {
	Code        string `json:"-"`
	Coupon      string `json:"coupon"`
	Platform    string `json:"platform"`
	Email       string `json:"email"`
	WithdrawnAt int64  `json:"withdrawnAt"`
}
