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

package mqx

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracingMQ_Produce(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		produceErr error
		wantCode   codes.Code
	}{
		{
			name:     "发送成功",
			wantCode: codes.Ok,
		},
		{
			name:       "发送失败",
			produceErr: errors.New("broker 不可用"),
			wantCode:   codes.Error,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
			fp := &fakeProducer{err: tc.produceErr}
			q := &TracingMQ{MQ: &fakeMQ{p: fp}, tracer: tp.Tracer("test")}

			p, err := q.Producer("redemption_events")
			require.NoError(t, err)
			_, err = p.Produce(context.Background(), &mq.Message{
				Key:   []byte("CODE-1"),
				Value: []byte(`{"code":"CODE-1"}`),
			})
			assert.Equal(t, tc.produceErr, err)
			assert.Equal(t, 1, fp.calls)

			spans := sr.Ended()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, "mq.produce", span.Name())
			assert.Equal(t, tc.wantCode, span.Status().Code)
			assert.Contains(t, span.Attributes(), attribute.String("messaging.destination", "redemption_events"))
			assert.Contains(t, span.Attributes(), attribute.String("messaging.message_key", "CODE-1"))
		})
	}
}

func TestTracingMQ_ProducerError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("topic 不存在")
	q := NewTracingMQ(&fakeMQ{err: wantErr})
	_, err := q.Producer("redemption_events")
	assert.Equal(t, wantErr, err)
}

type fakeMQ struct {
	mq.MQ
	p   mq.Producer
	err error
}

func (f *fakeMQ) Producer(topic string) (mq.Producer, error) {
	return f.p, f.err
}

type fakeProducer struct {
	mq.Producer
	calls int
	err   error
}

func (f *fakeProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &mq.ProducerResult{}, nil
}
