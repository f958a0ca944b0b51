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

package metrics

import (
	"context"
	"errors"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/credit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess      = "success"
	resultInsufficient = "insufficient_credit"
	resultError        = "error"
)

type HandlerBuilder struct {
	counterVec *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(reg prometheus.Registerer) *HandlerBuilder {
	counterVec := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Total number of sentiment classifications",
		},
		[]string{"biz", "result", "label"},
	)
	return &HandlerBuilder{
		counterVec: counterVec,
	}
}

func (h *HandlerBuilder) Name() string {
	return "metrics"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.Request) (domain.Response, error) {
		resp, err := next.Handle(ctx, req)
		switch {
		case err == nil:
			h.counterVec.WithLabelValues(req.Biz, resultSuccess, resp.Label.String()).Inc()
		case errors.Is(err, credit.ErrInsufficientCredit):
			h.counterVec.WithLabelValues(req.Biz, resultInsufficient, "").Inc()
		default:
			h.counterVec.WithLabelValues(req.Biz, resultError, "").Inc()
		}
		return resp, err
	})
}
