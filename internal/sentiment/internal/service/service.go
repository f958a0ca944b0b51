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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/credit"
)

var (
	ErrInsufficientCredit = credit.ErrInsufficientCredit
	ErrInvalidText        = errors.New("待分析的文本为空")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/sentiment.mock.go -package=sentimentmocks Service
type Service interface {
	// Analyze 扣一个积分之后给文本打上情感标签
	Analyze(ctx context.Context, req domain.Request) (domain.Response, error)
}

type service struct {
	root handler.Handler
}

func NewService(root handler.Handler) Service {
	return &service{root: root}
}

func (s *service) Analyze(ctx context.Context, req domain.Request) (domain.Response, error) {
	// 先校验再扣费，空文本不能消耗积分
	if strings.TrimSpace(req.Text) == "" {
		return domain.Response{}, fmt.Errorf("%w, biz %s, bizId %d", ErrInvalidText, req.Biz, req.BizID)
	}
	return s.root.Handle(ctx, req)
}
