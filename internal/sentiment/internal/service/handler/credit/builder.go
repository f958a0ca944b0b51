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

package credit

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	"github.com/gotomicro/ego/core/elog"
	uuid "github.com/lithammer/shortuuid/v4"
)

// 每次分析消耗的积分
const price int64 = 1

// 同一个 key 被退还之后最多重新扣费的次数
const maxDebitAttempts = 5

var (
	ErrInsufficientCredit   = errors.New("积分不足")
	ErrTooManyDebitAttempts = errors.New("重复扣费次数过多")
)

// RefundKey 退还积分使用的幂等键
func RefundKey(key string) string {
	return "refund:" + key
}

type HandlerBuilder struct {
	creditSvc credit.Service
	logger    *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(creditSvc credit.Service) *HandlerBuilder {
	return &HandlerBuilder{
		creditSvc: creditSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "credit"
}

// Next 先扣积分再调用下游，扣减是一个带条件的原子更新，
// 积分不足的时候下游一定不会被调用
func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.Request) (domain.Response, error) {
		if req.Key == "" {
			req.Key = uuid.New()
		}
		key, remaining, err := h.deduct(ctx, req)
		if err != nil {
			return domain.Response{}, err
		}
		// 后续的退还都要用真正扣费的 key
		req.Key = key

		resp, err := next.Handle(ctx, req)
		if err != nil {
			h.refund(ctx, req)
			return resp, err
		}
		resp.Key = req.Key
		resp.Credits = remaining
		return resp, nil
	})
}

// deduct 返回真正扣费使用的 key 和扣费之后的余额。
// key 已经扣过并且没有退还，说明是重试的请求，不再重复扣费；
// 已经退还过的 key 换成 key:1、key:2 ... 重新扣费
func (h *HandlerBuilder) deduct(ctx context.Context, req domain.Request) (string, uint64, error) {
	key := req.Key
	for i := 1; i <= maxDebitAttempts; i++ {
		remaining, err := h.creditSvc.DeductCredits(ctx, credit.Credit{
			Uid: req.Uid,
			Logs: []credit.CreditLog{
				{
					Key:          key,
					ChangeAmount: price,
					Biz:          req.Biz,
					BizId:        req.BizID,
					Desc:         "情感分析",
				},
			},
		})
		switch {
		case err == nil:
			return key, remaining, nil
		case errors.Is(err, credit.ErrCreditNotEnough):
			return "", 0, fmt.Errorf("%w, 余额为零，无法继续分析，用户 %d", ErrInsufficientCredit, req.Uid)
		case errors.Is(err, credit.ErrDuplicatedCreditLog):
			refunded, err1 := h.creditSvc.HasCreditLog(ctx, RefundKey(key))
			if err1 != nil {
				return "", 0, err1
			}
			if !refunded {
				c, err1 := h.creditSvc.GetCreditsByUID(ctx, req.Uid)
				if err1 != nil {
					return "", 0, err1
				}
				return key, c.TotalAmount, nil
			}
			key = fmt.Sprintf("%s:%d", req.Key, i)
		default:
			return "", 0, err
		}
	}
	return "", 0, fmt.Errorf("%w, key %s", ErrTooManyDebitAttempts, req.Key)
}

func (h *HandlerBuilder) refund(ctx context.Context, req domain.Request) {
	err := h.creditSvc.AddCredits(ctx, credit.Credit{
		Uid: req.Uid,
		Logs: []credit.CreditLog{
			{
				Key:          RefundKey(req.Key),
				ChangeAmount: price,
				Biz:          req.Biz,
				BizId:        req.BizID,
				Desc:         "情感分析失败退还",
			},
		},
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		h.logger.Error("退还积分失败",
			elog.FieldErr(err),
			elog.Int64("uid", req.Uid),
			elog.String("key", req.Key))
	}
}
