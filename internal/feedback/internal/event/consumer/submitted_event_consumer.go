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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type FeedbackSubmittedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewFeedbackSubmittedConsumer(svc service.Service, q mq.MQ) (*FeedbackSubmittedConsumer, error) {
	const groupID = "feedback-auto-analyze"
	consumer, err := q.Consumer(event.FeedbackSubmittedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &FeedbackSubmittedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *FeedbackSubmittedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("自动分析反馈失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *FeedbackSubmittedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.FeedbackSubmittedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.AutoAnalyze(ctx, evt.ID)
	if errors.Is(err, service.ErrInsufficientCredit) {
		// 等用户充值之后手动分析
		c.logger.Warn("积分不足，跳过自动分析",
			elog.Int64("uid", evt.Uid),
			elog.Int64("feedbackId", evt.ID),
		)
		return nil
	}
	return err
}

func (c *FeedbackSubmittedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
