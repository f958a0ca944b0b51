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

package rule

import (
	"context"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/classifier"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
)

// Handler 最内层的处理器，真正执行打分
type Handler struct {
	classifier *classifier.Classifier
}

var _ handler.Handler = &Handler{}

func NewHandler(c *classifier.Classifier) *Handler {
	return &Handler{classifier: c}
}

func (h *Handler) Handle(_ context.Context, req domain.Request) (domain.Response, error) {
	return domain.Response{
		Label: h.classifier.Classify(req.Text, req.Rating),
	}, nil
}
