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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

const CodeRedeemedEventName = "redemption_events"

// CodeRedeemedEvent 兑换码成功发放之后发出，下游自行去重
type CodeRedeemedEvent struct {
	Code     string `json:"code"`
	Coupon   string `json:"coupon"`
	Platform string `json:"platform"`
	Email    string `json:"email"`
	// SentAt 毫秒时间戳
	SentAt int64 `json:"sentAt"`
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go RedeemedEventProducer
type RedeemedEventProducer interface {
	Produce(ctx context.Context, evt CodeRedeemedEvent) error
}

type redeemedEventProducer struct {
	producer mq.Producer
}

func NewRedeemedEventProducer(q mq.MQ) (RedeemedEventProducer, error) {
	producer, err := q.Producer(CodeRedeemedEventName)
	if err != nil {
		return nil, err
	}
	return &redeemedEventProducer{
		producer: producer,
	}, nil
}

func (p *redeemedEventProducer) Produce(ctx context.Context, evt CodeRedeemedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(evt.Code),
		Value: data,
	})
	return err
}
