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
	"fmt"
	"time"

	"github.com/ecodeclub/chatterdoc/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// 服务自己生产或者消费的 topic，配置里面漏掉了也要创建
var requiredTopics = []topicConfig{
	{Name: "credit_increase_events", Partitions: 1},
	{Name: "feedback_submitted_events", Partitions: 1},
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}

	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	for _, tc := range mergeTopics(cfg.Topics) {
		if e := q.CreateTopic(ctx, tc.Name, tc.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), tc.Name, tc.Partitions))
		}
	}
	return mqx.NewTraceMq(q)
}

// mergeTopics 以配置为准，补上缺少的 topic，分区数至少为 1
func mergeTopics(configured []topicConfig) []topicConfig {
	res := make([]topicConfig, 0, len(configured)+len(requiredTopics))
	seen := make(map[string]struct{}, len(configured))
	for _, tc := range configured {
		if tc.Name == "" {
			continue
		}
		if _, ok := seen[tc.Name]; ok {
			continue
		}
		seen[tc.Name] = struct{}{}
		tc.Partitions = max(tc.Partitions, 1)
		res = append(res, tc)
	}
	for _, tc := range requiredTopics {
		if _, ok := seen[tc.Name]; !ok {
			res = append(res, tc)
		}
	}
	return res
}
