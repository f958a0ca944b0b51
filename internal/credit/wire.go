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

package credit

import (
	"sync"

	"github.com/ecodeclub/chatterdoc/internal/credit/internal/event"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/event/cache"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/repository"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/repository/dao"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, e ecache.Cache) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		InitService,
		cache.NewCreditECache,
		event.NewCreditIncreaseConsumer,
		web.NewHandler,
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		var cfg service.Config
		// 没有配置的时候使用默认的赠送积分
		_ = econf.UnmarshalKey("credit", &cfg)
		d := dao.NewCreditGORMDAO(db)
		r := repository.NewCreditRepository(d)
		svc = service.NewCreditService(r, cfg)
	})
	return svc
}
