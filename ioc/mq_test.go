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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTopics(t *testing.T) {
	testCases := []struct {
		name       string
		configured []topicConfig
		want       []topicConfig
	}{
		{
			name: "没有配置",
			want: requiredTopics,
		},
		{
			name: "配置优先并补上缺少的",
			configured: []topicConfig{
				{Name: "feedback_submitted_events", Partitions: 3},
			},
			want: []topicConfig{
				{Name: "feedback_submitted_events", Partitions: 3},
				{Name: "credit_increase_events", Partitions: 1},
			},
		},
		{
			name: "重复和非法的配置",
			configured: []topicConfig{
				{Name: "credit_increase_events", Partitions: 0},
				{Name: "credit_increase_events", Partitions: 5},
				{Name: ""},
				{Name: "order_events", Partitions: 2},
			},
			want: []topicConfig{
				{Name: "credit_increase_events", Partitions: 1},
				{Name: "order_events", Partitions: 2},
				{Name: "feedback_submitted_events", Partitions: 1},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mergeTopics(tc.configured))
		})
	}
}
