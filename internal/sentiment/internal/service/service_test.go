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
	"testing"

	"github.com/ecodeclub/chatterdoc/internal/credit"
	creditmocks "github.com/ecodeclub/chatterdoc/internal/credit/mocks"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/classifier"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler"
	credithdl "github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/credit"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/log"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/metrics"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/rule"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(creditSvc credit.Service, reg prometheus.Registerer) Service {
	root := handler.NewCompositionHandler([]handler.Builder{
		log.NewHandlerBuilder(),
		metrics.NewHandlerBuilder(reg),
		credithdl.NewHandlerBuilder(creditSvc),
	}, rule.NewHandler(classifier.NewClassifier()))
	return NewService(root)
}

func TestService_Analyze(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) credit.Service
		req       domain.Request
		wantLabel domain.Label
		wantLeft  uint64
		wantErr   error
	}{
		{
			name: "正面评价",
			mock: func(ctrl *gomock.Controller) credit.Service {
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().DeductCredits(gomock.Any(), gomock.Any()).Return(uint64(24), nil)
				return svc
			},
			req:       domain.Request{Key: "a1", Uid: 1, Biz: "feedback", BizID: 1, Text: "I love this product, it is great!"},
			wantLabel: domain.LabelPositive,
			wantLeft:  24,
		},
		{
			name: "负面评价",
			mock: func(ctrl *gomock.Controller) credit.Service {
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().DeductCredits(gomock.Any(), gomock.Any()).Return(uint64(9), nil)
				return svc
			},
			req:       domain.Request{Key: "a2", Uid: 1, Biz: "feedback", BizID: 2, Text: "The app is slow and buggy.", Rating: 1},
			wantLabel: domain.LabelNegative,
			wantLeft:  9,
		},
		{
			name: "空文本不扣积分",
			mock: func(ctrl *gomock.Controller) credit.Service {
				return creditmocks.NewMockService(ctrl)
			},
			req:     domain.Request{Key: "a3", Uid: 1, Biz: "feedback", BizID: 3, Text: "   "},
			wantErr: ErrInvalidText,
		},
		{
			name: "积分不足",
			mock: func(ctrl *gomock.Controller) credit.Service {
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().DeductCredits(gomock.Any(), gomock.Any()).Return(uint64(0), credit.ErrCreditNotEnough)
				return svc
			},
			req:     domain.Request{Key: "a4", Uid: 1, Biz: "feedback", BizID: 4, Text: "great"},
			wantErr: ErrInsufficientCredit,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(tc.mock(ctrl), prometheus.NewRegistry())
			resp, err := svc.Analyze(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantLabel, resp.Label)
			assert.Equal(t, tc.wantLeft, resp.Credits)
			assert.Equal(t, tc.req.Key, resp.Key)
		})
	}
}

func TestService_AnalyzeMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	creditSvc := creditmocks.NewMockService(ctrl)
	creditSvc.EXPECT().DeductCredits(gomock.Any(), gomock.Any()).Return(uint64(1), nil)
	creditSvc.EXPECT().DeductCredits(gomock.Any(), gomock.Any()).Return(uint64(0), credit.ErrCreditNotEnough)

	reg := prometheus.NewRegistry()
	svc := newTestService(creditSvc, reg)
	_, err := svc.Analyze(context.Background(), domain.Request{Uid: 1, Biz: "feedback", Text: "works fine"})
	require.NoError(t, err)
	_, err = svc.Analyze(context.Background(), domain.Request{Uid: 1, Biz: "feedback", Text: "works fine"})
	require.ErrorIs(t, err, ErrInsufficientCredit)

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "sentiment_classifications_total"))
}
