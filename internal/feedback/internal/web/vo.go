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

package web

import (
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
)

type Feedback struct {
	ID        int64  `json:"id"`
	APIKeyID  int64  `json:"apiKeyId"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	Source    string `json:"source"`
	Sentiment string `json:"sentiment"`
	Analyzed  bool   `json:"analyzed"`
	Ctime     int64  `json:"ctime"`
	Utime     int64  `json:"utime"`
}

type SubmitReq struct {
	Text string `json:"text"`
	// Rating 没有传的时候为 nil
	Rating *int `json:"rating"`
}

type SubmitResp struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ListReq struct {
	APIKeyID  int64  `json:"apiKeyId"`
	Sentiment string `json:"sentiment"`
	Analyzed  *bool  `json:"analyzed"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type FeedbackList struct {
	Total     int64      `json:"total"`
	Feedbacks []Feedback `json:"feedbacks"`
}

type FeedbackID struct {
	ID int64 `json:"id"`
}

type FeedbackIDs struct {
	IDs []int64 `json:"ids"`
}

type Stats struct {
	Total      int64 `json:"total"`
	Positive   int64 `json:"positive"`
	Negative   int64 `json:"negative"`
	Neutral    int64 `json:"neutral"`
	Unanalyzed int64 `json:"unanalyzed"`
}

type AnalyzeResp struct {
	Feedback Feedback `json:"feedback"`
	// Credits 剩余积分
	Credits uint64 `json:"credits"`
}

type BatchAnalyzeResp struct {
	Success      int    `json:"success"`
	Failed       int    `json:"failed"`
	Insufficient int    `json:"insufficient"`
	Credits      uint64 `json:"credits"`
}

func newFeedback(fb domain.Feedback) Feedback {
	return Feedback{
		ID:        fb.ID,
		APIKeyID:  fb.APIKeyID,
		Text:      fb.Text,
		Rating:    fb.Rating,
		Source:    fb.Source,
		Sentiment: fb.Sentiment.String(),
		Analyzed:  fb.Analyzed,
		Ctime:     fb.Ctime.UnixMilli(),
		Utime:     fb.Utime.UnixMilli(),
	}
}
