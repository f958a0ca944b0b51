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
	"errors"
	"fmt"

	"github.com/ecodeclub/chatterdoc/internal/credit/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/event/cache"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type CreditIncreaseConsumer struct {
	svc      service.Service
	cache    cache.CreditCache
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCreditIncreaseConsumer(svc service.Service, c cache.CreditCache, q mq.MQ) (*CreditIncreaseConsumer, error) {
	const groupID = "credit"
	consumer, err := q.Consumer(creditIncreaseEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &CreditIncreaseConsumer{
		svc:      svc,
		cache:    c,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *CreditIncreaseConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("消费积分事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *CreditIncreaseConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt CreditIncreaseEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	ok, err := c.cache.SetNXEventKey(ctx, evt.Key)
	if err != nil {
		return fmt.Errorf("设置事件幂等键失败: %w", err)
	}
	if !ok {
		c.logger.Warn("重复的积分事件", elog.String("key", evt.Key))
		return nil
	}

	err = c.svc.AddCredits(ctx, domain.Credit{
		Uid: evt.Uid,
		Logs: []domain.CreditLog{
			{
				Key:          evt.Key,
				ChangeAmount: int64(evt.Amount),
				Biz:          evt.Biz,
				BizId:        evt.BizId,
				Desc:         evt.Action,
			},
		},
	})
	if err != nil && !errors.Is(err, service.ErrDuplicatedCreditLog) {
		// 删除幂等键，允许重新投递之后再处理
		if _, err1 := c.cache.DelEventKey(ctx, evt.Key); err1 != nil {
			c.logger.Error("删除积分事件幂等键失败", elog.FieldErr(err1), elog.String("key", evt.Key))
		}
		return fmt.Errorf("增加积分失败: %w, 消息体 %#v", err, evt)
	}
	return nil
}

func (c *CreditIncreaseConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
