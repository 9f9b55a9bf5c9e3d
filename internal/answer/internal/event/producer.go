package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

type AnswerEventProducer struct {
	producer mq.Producer
}

func NewAnswerEventProducer(q mq.MQ) (*AnswerEventProducer, error) {
	producer, err := q.Producer(AnswerSubmittedEvent{}.Topic())
	if err != nil {
		return nil, err
	}
	return &AnswerEventProducer{producer: producer}, nil
}

func (p *AnswerEventProducer) Produce(ctx context.Context, evt AnswerSubmittedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送回答提交消息失败: %w", err)
	}
	return nil
}
