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

//go:build wireinject

package sentiment

import (
	"sync"

	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/classifier"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	credithdl "github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/credit"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/log"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/metrics"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/rule"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
)

func InitModule(creditModule *credit.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*credit.Module), "Svc"),
		InitService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var (
	once = &sync.Once{}
	svc  service.Service
)

// InitService 处理顺序：日志 -> 指标 -> 扣积分 -> 规则打分
func InitService(creditSvc credit.Service) Service {
	once.Do(func() {
		root := handler.NewCompositionHandler([]handler.Builder{
			log.NewHandlerBuilder(),
			metrics.NewHandlerBuilder(prometheus.DefaultRegisterer),
			credithdl.NewHandlerBuilder(creditSvc),
		}, rule.NewHandler(classifier.NewClassifier()))
		svc = service.NewService(root)
	})
	return svc
}
