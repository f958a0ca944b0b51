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

package feedback

import (
	"sync"

	"github.com/ecodeclub/chatterdoc/internal/apikey"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event/consumer"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event/producer"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/web"
	"github.com/ecodeclub/chatterdoc/internal/pkg/snowflake"
	"github.com/ecodeclub/chatterdoc/internal/sentiment"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	idGen snowflake.Generator,
	apiKeyModule *apikey.Module,
	sentimentModule *sentiment.Module,
	creditModule *credit.Module) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*apikey.Module), "Svc"),
		wire.FieldsOf(new(*sentiment.Module), "Svc"),
		wire.FieldsOf(new(*credit.Module), "Svc"),
		InitFeedbackDAO,
		InitConfig,
		repository.NewFeedbackRepository,
		producer.NewSubmittedEventProducer,
		service.NewService,
		consumer.NewFeedbackSubmittedConsumer,
		web.NewHandler,
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitFeedbackDAO(db *egorm.Component) dao.FeedbackDAO {
	InitTableOnce(db)
	return dao.NewFeedbackDAO(db)
}

func InitConfig() service.Config {
	cfg := service.DefaultConfig()
	// 没有配置的项保持默认值
	_ = econf.UnmarshalKey("feedback", &cfg)
	return cfg
}
