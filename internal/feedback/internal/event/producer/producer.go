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

package producer

import (
	"strconv"

	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event"
	"github.com/ecodeclub/chatterdoc/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type SubmittedEventProducer = mqx.Producer[event.FeedbackSubmittedEvent]

func NewSubmittedEventProducer(q mq.MQ) (SubmittedEventProducer, error) {
	// 同一个用户的反馈按提交顺序分析
	p, err := mqx.NewGeneralProducer[event.FeedbackSubmittedEvent](q, event.FeedbackSubmittedEventName,
		mqx.WithKeyFunc(func(evt event.FeedbackSubmittedEvent) string {
			return strconv.FormatInt(evt.Uid, 10)
		}))
	if err != nil {
		return nil, err
	}
	return p, nil
}
