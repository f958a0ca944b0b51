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

package apikey

import (
	"sync"

	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository/cache"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository/dao"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(wire.Struct(new(Module), "*"),
		InitAPIKeyDAO,
		cache.NewAPIKeyECache,
		repository.NewCachedAPIKeyRepository,
		service.NewService,
		web.NewHandler,
	)
	return new(Module)
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

func InitAPIKeyDAO(db *egorm.Component) dao.APIKeyDAO {
	InitTableOnce(db)
	return dao.NewAPIKeyGORMDAO(db)
}
