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

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/chatterdoc/internal/apikey"
	apikeymocks "github.com/ecodeclub/chatterdoc/internal/apikey/mocks"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	creditmocks "github.com/ecodeclub/chatterdoc/internal/credit/mocks"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository"
	repomocks "github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository/mocks"
	"github.com/ecodeclub/chatterdoc/internal/pkg/snowflake"
	"github.com/ecodeclub/chatterdoc/internal/sentiment"
	sentimentmocks "github.com/ecodeclub/chatterdoc/internal/sentiment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	mu   sync.Mutex
	evts []event.FeedbackSubmittedEvent
	err  error
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.FeedbackSubmittedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evts = append(f.evts, evt)
	return f.err
}

type mocks struct {
	repo      *repomocks.MockFeedbackRepository
	apiKey    *apikeymocks.MockService
	sentiment *sentimentmocks.MockService
	credit    *creditmocks.MockService
	producer  *fakeProducer
}

func newTestService(t *testing.T, ctrl *gomock.Controller, cfg Config) (Service, mocks) {
	idGen, err := snowflake.NewBizSnowflake(0, Biz)
	require.NoError(t, err)
	m := mocks{
		repo:      repomocks.NewMockFeedbackRepository(ctrl),
		apiKey:    apikeymocks.NewMockService(ctrl),
		sentiment: sentimentmocks.NewMockService(ctrl),
		credit:    creditmocks.NewMockService(ctrl),
		producer:  &fakeProducer{},
	}
	svc := NewService(m.repo, m.apiKey, m.sentiment, m.credit, m.producer, idGen, cfg)
	return svc, m
}

func TestService_Submit(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		mock       func(m mocks)
		apiKey     string
		sub        domain.Submission
		wantErr    error
		wantEvents int
		after      func(t *testing.T, fb domain.Feedback)
	}{
		{
			name: "API Key 无效",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_bad").
					Return(apikey.APIKey{}, apikey.ErrAPIKeyNotFound)
			},
			apiKey:  "sk_bad",
			sub:     domain.Submission{Text: "good"},
			wantErr: ErrInvalidAPIKey,
		},
		{
			name: "内容和评分都为空",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
			},
			apiKey:  "sk_ok",
			sub:     domain.Submission{Text: "  "},
			wantErr: ErrEmptyFeedback,
		},
		{
			name: "只有 HTML 标签",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
			},
			apiKey:  "sk_ok",
			sub:     domain.Submission{Text: `<img src="x.png">`},
			wantErr: ErrEmptyFeedback,
		},
		{
			name: "去掉 HTML 标签",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			apiKey: "sk_ok",
			sub:    domain.Submission{Text: "<script>alert(1)</script><b>great</b> product"},
			after: func(t *testing.T, fb domain.Feedback) {
				assert.Equal(t, "great product", fb.Text)
			},
		},
		{
			name: "评分超出范围",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
			},
			apiKey:  "sk_ok",
			sub:     domain.Submission{Rating: ratingOf(6)},
			wantErr: ErrInvalidRating,
		},
		{
			name: "只有评分",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			cfg:    Config{AutoAnalyze: true},
			apiKey: "sk_ok",
			sub:    domain.Submission{Rating: ratingOf(4)},
			after: func(t *testing.T, fb domain.Feedback) {
				assert.Equal(t, 4, fb.Rating)
				assert.Equal(t, domain.UnknownSource, fb.Source)
			},
		},
		{
			name: "开启自动分析",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fb domain.Feedback) error {
						assert.True(t, fb.ID > 0)
						assert.Equal(t, int64(9), fb.Uid)
						assert.Equal(t, int64(1), fb.APIKeyID)
						assert.Equal(t, 0, fb.Rating)
						return nil
					})
			},
			cfg:        Config{AutoAnalyze: true},
			apiKey:     "sk_ok",
			sub:        domain.Submission{Text: "great", Source: "https://shop.example.com"},
			wantEvents: 1,
			after: func(t *testing.T, fb domain.Feedback) {
				assert.Equal(t, "https://shop.example.com", fb.Source)
				assert.False(t, fb.Analyzed)
			},
		},
		{
			name: "保存失败",
			mock: func(m mocks) {
				m.apiKey.EXPECT().FindByKey(gomock.Any(), "sk_ok").
					Return(apikey.APIKey{ID: 1, Uid: 9}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
			},
			apiKey:  "sk_ok",
			sub:     domain.Submission{Text: "great"},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(t, ctrl, tc.cfg)
			tc.mock(m)
			fb, err := svc.Submit(context.Background(), tc.apiKey, tc.sub)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, m.producer.evts, tc.wantEvents)
			tc.after(t, fb)
		})
	}
}

func TestService_Analyze(t *testing.T) {
	const uid = int64(9)
	fb := domain.Feedback{ID: 100, Uid: uid, Text: "I love it", Rating: 5, Ctime: time.UnixMilli(1)}
	testCases := []struct {
		name    string
		cfg     Config
		mock    func(m mocks)
		uid     int64
		want    domain.Analysis
		wantErr error
	}{
		{
			name: "分析成功",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(fb, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), sentiment.Request{
					Uid: uid, Biz: Biz, BizID: 100, Text: "I love it", Rating: 5,
				}).Return(sentiment.Response{Label: sentiment.LabelPositive, Key: "k1", Credits: 24}, nil)
				m.repo.EXPECT().UpdateSentiment(gomock.Any(), int64(100), domain.SentimentPositive).Return(nil)
			},
			uid: uid,
			want: domain.Analysis{
				Feedback: domain.Feedback{
					ID: 100, Uid: uid, Text: "I love it", Rating: 5, Ctime: time.UnixMilli(1),
					Sentiment: domain.SentimentPositive, Analyzed: true,
				},
				Credits: 24,
			},
		},
		{
			name: "反馈不存在",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(domain.Feedback{}, repository.ErrRecordNotFound)
			},
			uid:     uid,
			wantErr: ErrFeedbackNotFound,
		},
		{
			name: "不是自己的反馈",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(fb, nil)
			},
			uid:     uid + 1,
			wantErr: ErrPermissionDenied,
		},
		{
			name: "不允许重复分析",
			cfg:  Config{AllowReanalyze: false},
			mock: func(m mocks) {
				analyzed := fb
				analyzed.Analyzed = true
				analyzed.Sentiment = domain.SentimentNeutral
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(analyzed, nil)
			},
			uid:     uid,
			wantErr: ErrAlreadyAnalyzed,
		},
		{
			name: "空文本不扣费",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				empty := fb
				empty.Text = " "
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(empty, nil)
			},
			uid:     uid,
			wantErr: ErrInvalidText,
		},
		{
			name: "积分不足",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(fb, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(sentiment.Response{}, sentiment.ErrInsufficientCredit)
			},
			uid:     uid,
			wantErr: ErrInsufficientCredit,
		},
		{
			name: "保存结果失败退还积分",
			cfg:  DefaultConfig(),
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(100)).Return(fb, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(sentiment.Response{Label: sentiment.LabelPositive, Key: "k2", Credits: 3}, nil)
				m.repo.EXPECT().UpdateSentiment(gomock.Any(), int64(100), domain.SentimentPositive).
					Return(errors.New("mock db error"))
				m.credit.EXPECT().AddCredits(gomock.Any(), credit.Credit{
					Uid: uid,
					Logs: []credit.CreditLog{
						{Key: "refund:k2", ChangeAmount: 1, Biz: Biz, BizId: 100, Desc: "保存分析结果失败退还"},
					},
				}).Return(nil)
			},
			uid:     uid,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(t, ctrl, tc.cfg)
			tc.mock(m)
			got, err := svc.Analyze(context.Background(), tc.uid, 100)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_Analyze_Reanalyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newTestService(t, ctrl, DefaultConfig())
	fb := domain.Feedback{ID: 1, Uid: 2, Text: "slow", Analyzed: true, Sentiment: domain.SentimentNeutral}
	m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(fb, nil)
	m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
		Return(sentiment.Response{Label: sentiment.LabelNegative, Key: "k", Credits: 1}, nil)
	m.repo.EXPECT().UpdateSentiment(gomock.Any(), int64(1), domain.SentimentNegative).Return(nil)

	a, err := svc.Analyze(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNegative, a.Feedback.Sentiment)
	assert.Equal(t, uint64(1), a.Credits)
}

func TestService_BatchAnalyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// 并发度为 1，保证执行顺序
	svc, m := newTestService(t, ctrl, Config{BatchConcurrency: 1})
	const uid = int64(5)
	m.repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2, 3, 4, 5, 6}).Return([]domain.Feedback{
		{ID: 1, Uid: uid, Text: "great"},
		{ID: 2, Uid: uid + 1, Text: "not mine"},
		{ID: 3, Uid: uid, Text: "done", Analyzed: true},
		{ID: 4, Uid: uid, Text: "good"},
		{ID: 5, Uid: uid, Text: "bad"},
		{ID: 6, Uid: uid, Text: "fine"},
	}, nil)
	gomock.InOrder(
		m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
			Return(sentiment.Response{Label: sentiment.LabelPositive, Key: "a", Credits: 1}, nil),
		m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
			Return(sentiment.Response{Label: sentiment.LabelPositive, Key: "b", Credits: 0}, nil),
		m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
			Return(sentiment.Response{}, sentiment.ErrInsufficientCredit),
	)
	m.repo.EXPECT().UpdateSentiment(gomock.Any(), gomock.Any(), domain.SentimentPositive).Return(nil).Times(2)

	res, err := svc.BatchAnalyze(context.Background(), uid, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, domain.BatchResult{
		Success:      2,
		Insufficient: 2,
		Credits:      0,
	}, res)
}

func TestService_BatchAnalyze_NoneCharged(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.BatchResult
		wantErr error
	}{
		{
			name: "全部积分不足返回真实余额",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.Feedback{
					{ID: 1, Uid: 5, Text: "great"},
					{ID: 2, Uid: 5, Text: "good"},
				}, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(sentiment.Response{}, sentiment.ErrInsufficientCredit)
				m.credit.EXPECT().GetCreditsByUID(gomock.Any(), int64(5)).
					Return(credit.Credit{Uid: 5}, nil)
			},
			want: domain.BatchResult{Insufficient: 2},
		},
		{
			name: "全部失败",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.Feedback{
					{ID: 1, Uid: 5, Text: "great"},
					{ID: 2, Uid: 5, Text: "good"},
				}, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(sentiment.Response{}, errors.New("mock error")).Times(2)
				m.credit.EXPECT().GetCreditsByUID(gomock.Any(), int64(5)).
					Return(credit.Credit{Uid: 5, TotalAmount: 7}, nil)
			},
			want: domain.BatchResult{Failed: 2, Credits: 7},
		},
		{
			name: "都不需要分析",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.Feedback{
					{ID: 1, Uid: 6, Text: "great"},
					{ID: 2, Uid: 5, Text: "good", Analyzed: true},
				}, nil)
				m.credit.EXPECT().GetCreditsByUID(gomock.Any(), int64(5)).
					Return(credit.Credit{Uid: 5, TotalAmount: 12}, nil)
			},
			want: domain.BatchResult{Credits: 12},
		},
		{
			name: "查询余额失败",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return(nil, nil)
				m.credit.EXPECT().GetCreditsByUID(gomock.Any(), int64(5)).
					Return(credit.Credit{}, errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(t, ctrl, Config{BatchConcurrency: 1})
			tc.mock(m)
			res, err := svc.BatchAnalyze(context.Background(), 5, []int64{1, 2})
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestService_AutoAnalyze(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "已经分析过",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Feedback{ID: 7, Uid: 1, Text: "good", Analyzed: true}, nil)
			},
		},
		{
			name: "使用固定的 key 扣费",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Feedback{ID: 7, Uid: 1, Text: "good"}, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), sentiment.Request{
					Key: "feedback-auto:7", Uid: 1, Biz: Biz, BizID: 7, Text: "good",
				}).Return(sentiment.Response{Label: sentiment.LabelPositive, Key: "feedback-auto:7"}, nil)
				m.repo.EXPECT().UpdateSentiment(gomock.Any(), int64(7), domain.SentimentPositive).Return(nil)
			},
		},
		{
			name: "积分不足",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Feedback{ID: 7, Uid: 1, Text: "good"}, nil)
				m.sentiment.EXPECT().Analyze(gomock.Any(), gomock.Any()).
					Return(sentiment.Response{}, sentiment.ErrInsufficientCredit)
			},
			wantErr: ErrInsufficientCredit,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(t, ctrl, DefaultConfig())
			tc.mock(m)
			err := svc.AutoAnalyze(context.Background(), 7)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func ratingOf(r int) *int {
	return &r
}
