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

package log

import (
	"context"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	"github.com/gotomicro/ego/core/elog"
)

type HandlerBuilder struct {
	logger *elog.Component
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder() *HandlerBuilder {
	return &HandlerBuilder{
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "log"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.Request) (domain.Response, error) {
		logger := h.logger.With(elog.Int64("uid", req.Uid),
			elog.String("biz", req.Biz),
			elog.Int64("bizId", req.BizID))
		logger.Debug("开始情感分析", elog.Int("textLen", len(req.Text)))
		resp, err := next.Handle(ctx, req)
		if err != nil {
			logger.Error("情感分析失败", elog.FieldErr(err))
			return resp, err
		}
		logger.Debug("情感分析完成",
			elog.String("label", resp.Label.String()),
			elog.Any("credits", resp.Credits))
		return resp, nil
	})
}
