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

package domain

import "time"

// UnknownSource 提交请求里没有 Origin 的时候使用
const UnknownSource = "Unknown"

type Sentiment string

const (
	SentimentUnset    Sentiment = ""
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) String() string {
	return string(s)
}

type Feedback struct {
	ID       int64
	Uid      int64
	APIKeyID int64
	Text     string
	// Rating 0 表示没有评分
	Rating    int
	Source    string
	Sentiment Sentiment
	Analyzed  bool
	Ctime     time.Time
	Utime     time.Time
}

// Submission 接入方通过 API Key 提交的原始内容
type Submission struct {
	Text string
	// Rating 为 nil 表示没有评分
	Rating *int
	Source string
}

type Filter struct {
	APIKeyID  int64
	Sentiment Sentiment
	// Analyzed 为 nil 表示不过滤
	Analyzed *bool
}

type Stats struct {
	Total      int64
	Positive   int64
	Negative   int64
	Neutral    int64
	Unanalyzed int64
}

type BatchResult struct {
	Success      int
	Failed       int
	Insufficient int
	// Credits 最后一次成功扣费之后的余额
	Credits uint64
}

// Analysis 一次分析的结果
type Analysis struct {
	Feedback Feedback
	// Credits 扣费之后的余额
	Credits uint64
}
