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

package handler

import (
	"context"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
)

// CompositionHandler 按照 builders 的顺序层层包装 root，
// 第一个 builder 在最外层
type CompositionHandler struct {
	root Handler
}

func (c *CompositionHandler) Handle(ctx context.Context, req domain.Request) (domain.Response, error) {
	return c.root.Handle(ctx, req)
}

func NewCompositionHandler(builders []Builder, root Handler) *CompositionHandler {
	for i := len(builders) - 1; i >= 0; i-- {
		root = builders[i].Next(root)
	}
	return &CompositionHandler{
		root: root,
	}
}
