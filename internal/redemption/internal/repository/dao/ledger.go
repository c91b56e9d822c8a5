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
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrAssignmentNotFound = errors.New("发放记录不存在")

type ReserveStatus uint8

const (
	ReserveOK ReserveStatus = iota
	// ReserveHeld 同一个邮箱的另一个请求正在处理
	ReserveHeld
	// ReserveClaimed 已经领取过
	ReserveClaimed
)

var (
	// KEYS[1] 已领取集合 KEYS[2] 预占 key
	// ARGV[1] 邮箱 ARGV[2] token ARGV[3] 过期时间(毫秒)
	reserveScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 1 then
	return 2
end
if redis.call('SET', KEYS[2], ARGV[2], 'NX', 'PX', ARGV[3]) then
	return 0
end
return 1
`)

	// KEYS[1] 预占 key  ARGV[1] token
	releaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

	// KEYS[1] 发放记录 KEYS[2] 已领取集合 KEYS[3] 待确认 hash KEYS[4] 预占 key
	// ARGV[1] 发放记录 ARGV[2] 邮箱 ARGV[3] 兑换码 ARGV[4] token，为空表示没有预占
	commitScript = redis.NewScript(`
redis.call('SET', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[2])
redis.call('HDEL', KEYS[3], ARGV[3])
if ARGV[4] ~= '' and redis.call('GET', KEYS[4]) == ARGV[4] then
	redis.call('DEL', KEYS[4])
end
return 1
`)
)

type LedgerDAO interface {
	HasClaimed(ctx context.Context, coupon, email string) (bool, error)
	// Reserve 已领取检查和预占在同一个脚本里完成
	Reserve(ctx context.Context, coupon, email, token string, ttl time.Duration) (ReserveStatus, error)
	// Release 只删除自己持有的预占
	Release(ctx context.Context, coupon, email, token string) error
	// Commit 一次性写入发放记录、已领取邮箱，并清理待确认记录和预占
	Commit(ctx context.Context, a Assignment, token string) error
	ClaimedCount(ctx context.Context, coupon string) (int64, error)
	FindAssignment(ctx context.Context, code string) (Assignment, error)
	// MergeLegacy 把没有区分活动的已领取邮箱并入指定活动
	MergeLegacy(ctx context.Context, coupon string) (int64, error)
}

type redisLedgerDAO struct {
	cmd redis.Cmdable
}

func NewRedisLedgerDAO(cmd redis.Cmdable) LedgerDAO {
	return &redisLedgerDAO{cmd: cmd}
}

func (d *redisLedgerDAO) HasClaimed(ctx context.Context, coupon, email string) (bool, error) {
	return d.cmd.SIsMember(ctx, claimedKey(coupon), email).Result()
}

func (d *redisLedgerDAO) Reserve(ctx context.Context, coupon, email, token string, ttl time.Duration) (ReserveStatus, error) {
	res, err := reserveScript.Run(ctx, d.cmd,
		[]string{claimedKey(coupon), reservationKey(coupon, email)},
		email, token, ttl.Milliseconds()).Int64()
	if err != nil {
		return ReserveHeld, err
	}
	return ReserveStatus(res), nil
}

func (d *redisLedgerDAO) Release(ctx context.Context, coupon, email, token string) error {
	return releaseScript.Run(ctx, d.cmd, []string{reservationKey(coupon, email)}, token).Err()
}

func (d *redisLedgerDAO) Commit(ctx context.Context, a Assignment, token string) error {
	val, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return commitScript.Run(ctx, d.cmd,
		[]string{assignedKey(a.Code), claimedKey(a.Coupon), pendingKey, reservationKey(a.Coupon, a.Email)},
		val, a.Email, a.Code, token).Err()
}

func (d *redisLedgerDAO) ClaimedCount(ctx context.Context, coupon string) (int64, error) {
	return d.cmd.SCard(ctx, claimedKey(coupon)).Result()
}

func (d *redisLedgerDAO) FindAssignment(ctx context.Context, code string) (Assignment, error) {
	var a Assignment
	val, err := d.cmd.Get(ctx, assignedKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return a, ErrAssignmentNotFound
	}
	if err != nil {
		return a, err
	}
	err = json.Unmarshal(val, &a)
	a.Code = code
	return a, err
}

func (d *redisLedgerDAO) MergeLegacy(ctx context.Context, coupon string) (int64, error) {
	dst := claimedKey(coupon)
	var moved *redis.IntCmd
	_, err := d.cmd.TxPipelined(ctx, func(p redis.Pipeliner) error {
		moved = p.SCard(ctx, legacyClaimedKey)
		p.SUnionStore(ctx, dst, dst, legacyClaimedKey)
		p.Del(ctx, legacyClaimedKey)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return moved.Val(), nil
}

// Assignment 字段和线上已有数据保持一致
type Assignment struct {
	Code     string    `json:"-"`
	Email    string    `json:"email"`
	Platform string    `json:"platform"`
	Coupon   string    `json:"coupon"`
	SentAt   time.Time `json:"sentAt"`
}
