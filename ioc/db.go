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

package ioc

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/chatterdoc/internal/pkg/database"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

const defaultConnectRetries = 10

func InitDB() *egorm.Component {
	type Config struct {
		DSN string `yaml:"dsn"`
		// ConnectRetries 启动时等待 MySQL 就绪的最大重试次数
		ConnectRetries int `yaml:"connectRetries"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	if cfg.ConnectRetries <= 0 {
		cfg.ConnectRetries = defaultConnectRetries
	}
	if err := waitForDB(cfg.DSN, cfg.ConnectRetries); err != nil {
		panic(err)
	}

	db := egorm.Load("mysql").Build()
	err := db.Use(database.NewGormTracingPlugin())
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 测试环境使用，MySQL 没有就绪就一直重试
func WaitForDBSetup(dsn string) {
	if err := waitForDB(dsn, defaultConnectRetries); err != nil {
		panic(err)
	}
}

func waitForDB(dsn string, maxRetries int) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	const maxInterval = 10 * time.Second
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, int32(maxRetries))
	if err != nil {
		return err
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("等待 MySQL 就绪失败，重试 %d 次: %w", maxRetries, err)
		}
		time.Sleep(next)
	}
}
