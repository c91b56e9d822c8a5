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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/redeemer/internal/pkg/mqx"

// TracingMQ 只给发送打点，消费端由业务自己处理
type TracingMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracingMQ(q mq.MQ) *TracingMQ {
	return &TracingMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracingMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracingProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracingProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (p *tracingProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, "mq.produce", m)
	defer span.End()
	res, err := p.Producer.Produce(ctx, m)
	end(span, err)
	return res, err
}

func (p *tracingProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, "mq.produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := p.Producer.ProduceWithPartition(ctx, m, partition)
	end(span, err)
	return res, err
}

func (p *tracingProducer) start(ctx context.Context, name string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.destination", p.topic),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.String("messaging.message_key", string(m.Key)),
			attribute.Int("messaging.message_length", len(m.Value)))
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
