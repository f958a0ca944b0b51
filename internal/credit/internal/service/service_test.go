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
	"testing"

	"github.com/ecodeclub/chatterdoc/internal/credit/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/repository"
	repomocks "github.com/ecodeclub/chatterdoc/internal/credit/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_GetCreditsByUID(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CreditRepository
		uid     int64
		want    domain.Credit
		wantErr error
	}{
		{
			name: "已有积分",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(1)).
					Return(domain.Credit{Uid: 1, TotalAmount: 3}, nil)
				return repo
			},
			uid:  1,
			want: domain.Credit{Uid: 1, TotalAmount: 3},
		},
		{
			name: "新用户初始化积分",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(2)).
					Return(domain.Credit{}, repository.ErrRecordNotFound)
				repo.EXPECT().InitCredit(gomock.Any(), int64(2), DefaultAmount).
					Return(domain.Credit{Uid: 2, TotalAmount: DefaultAmount}, nil)
				return repo
			},
			uid:  2,
			want: domain.Credit{Uid: 2, TotalAmount: DefaultAmount},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(3)).
					Return(domain.Credit{}, errors.New("mock db error"))
				return repo
			},
			uid:     3,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCreditService(tc.mock(ctrl), Config{})
			got, err := svc.GetCreditsByUID(context.Background(), tc.uid)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_DeductCredits(t *testing.T) {
	validCredit := domain.Credit{
		Uid: 1,
		Logs: []domain.CreditLog{
			{Key: "key-1", ChangeAmount: 1, Biz: "feedback", BizId: 10},
		},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CreditRepository
		credit  domain.Credit
		want    uint64
		wantErr error
	}{
		{
			name: "扣减成功",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(1)).
					Return(domain.Credit{Uid: 1, TotalAmount: 2}, nil)
				repo.EXPECT().DeductCredits(gomock.Any(), validCredit).
					Return(domain.Credit{Uid: 1, TotalAmount: 1}, nil)
				return repo
			},
			credit: validCredit,
			want:   1,
		},
		{
			name: "积分不足",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(1)).
					Return(domain.Credit{Uid: 1}, nil)
				repo.EXPECT().DeductCredits(gomock.Any(), validCredit).
					Return(domain.Credit{}, ErrCreditNotEnough)
				return repo
			},
			credit:  validCredit,
			wantErr: ErrCreditNotEnough,
		},
		{
			name: "没有流水",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				return repomocks.NewMockCreditRepository(ctrl)
			},
			credit:  domain.Credit{Uid: 1},
			wantErr: ErrInvalidCreditLog,
		},
		{
			name: "扣减数量非法",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				return repomocks.NewMockCreditRepository(ctrl)
			},
			credit: domain.Credit{Uid: 1, Logs: []domain.CreditLog{
				{Key: "key-2", ChangeAmount: 0},
			}},
			wantErr: ErrInvalidCreditLog,
		},
		{
			name: "没有幂等键",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				return repomocks.NewMockCreditRepository(ctrl)
			},
			credit: domain.Credit{Uid: 1, Logs: []domain.CreditLog{
				{ChangeAmount: 1},
			}},
			wantErr: ErrInvalidCreditLog,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCreditService(tc.mock(ctrl), Config{})
			got, err := svc.DeductCredits(context.Background(), tc.credit)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_AddCredits(t *testing.T) {
	credit := domain.Credit{
		Uid: 5,
		Logs: []domain.CreditLog{
			{Key: "order-1", ChangeAmount: 30, Biz: "order", BizId: 1},
		},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CreditRepository
		wantErr error
	}{
		{
			name: "新用户先初始化再增加",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(5)).
					Return(domain.Credit{}, repository.ErrRecordNotFound)
				repo.EXPECT().InitCredit(gomock.Any(), int64(5), uint64(10)).
					Return(domain.Credit{Uid: 5, TotalAmount: 10}, nil)
				repo.EXPECT().AddCredits(gomock.Any(), credit).
					Return(domain.Credit{Uid: 5, TotalAmount: 40}, nil)
				return repo
			},
		},
		{
			name: "重复的流水",
			mock: func(ctrl *gomock.Controller) repository.CreditRepository {
				repo := repomocks.NewMockCreditRepository(ctrl)
				repo.EXPECT().GetCreditByUID(gomock.Any(), int64(5)).
					Return(domain.Credit{Uid: 5, TotalAmount: 40}, nil)
				repo.EXPECT().AddCredits(gomock.Any(), credit).
					Return(domain.Credit{}, ErrDuplicatedCreditLog)
				return repo
			},
			wantErr: ErrDuplicatedCreditLog,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCreditService(tc.mock(ctrl), Config{DefaultAmount: 10})
			err := svc.AddCredits(context.Background(), credit)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_HasCreditLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCreditRepository(ctrl)
	repo.EXPECT().HasCreditLog(gomock.Any(), "refund:key-1").Return(true, nil)
	repo.EXPECT().HasCreditLog(gomock.Any(), "refund:key-2").Return(false, nil)
	svc := NewCreditService(repo, Config{})

	ok, err := svc.HasCreditLog(context.Background(), "refund:key-1")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.HasCreditLog(context.Background(), "refund:key-2")
	assert.NoError(t, err)
	assert.False(t, ok)
}
