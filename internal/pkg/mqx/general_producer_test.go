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

package mqx

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralProducer_WithKeyFunc(t *testing.T) {
	const topic = "keyed_events"
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 3))

	consumer, err := q.Consumer(topic, "keyed")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, topic, WithKeyFunc(func(evt testEvent) string {
		return strconv.FormatInt(evt.ID, 10)
	}))
	require.NoError(t, err)
	defer producer.Close()

	for _, name := range []string{"first", "second"} {
		require.NoError(t, producer.Produce(ctx, testEvent{ID: 7, Name: name}))
	}

	var partitions []int64
	for i := 0; i < 2; i++ {
		msg, err := consumer.Consume(ctx)
		require.NoError(t, err)
		assert.Equal(t, "7", string(msg.Key))
		var evt testEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		assert.Equal(t, int64(7), evt.ID)
		partitions = append(partitions, msg.Partition)
	}
	// 同一个 key 落在同一个分区
	assert.Equal(t, partitions[0], partitions[1])
}

func TestGeneralProducer_WithoutKey(t *testing.T) {
	const topic = "plain_events"
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))

	consumer, err := q.Consumer(topic, "plain")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)

	require.NoError(t, producer.Produce(ctx, testEvent{ID: 1, Name: "feedback"}))
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Empty(t, msg.Key)
	assert.Equal(t, topic, msg.Topic)
}
