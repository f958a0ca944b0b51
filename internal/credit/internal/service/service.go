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
	"fmt"

	"github.com/ecodeclub/chatterdoc/internal/credit/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/repository"
)

var (
	ErrCreditNotEnough     = repository.ErrCreditNotEnough
	ErrDuplicatedCreditLog = repository.ErrDuplicatedCreditLog
	ErrInvalidCreditLog    = errors.New("积分流水信息非法")
)

// DefaultAmount 新用户第一次查询积分时赠送的数量
const DefaultAmount uint64 = 25

type Config struct {
	DefaultAmount uint64 `yaml:"defaultAmount"`
}

//go:generate mockgen -source=./service.go -destination=../../mocks/credit.mock.go -package=creditmocks Service
type Service interface {
	// GetCreditsByUID 没有积分记录的用户会先初始化
	GetCreditsByUID(ctx context.Context, uid int64) (domain.Credit, error)
	// AddCredits 按照流水的 Key 保证幂等
	AddCredits(ctx context.Context, credit domain.Credit) error
	// DeductCredits 原子扣减，返回扣减之后的余额
	DeductCredits(ctx context.Context, credit domain.Credit) (uint64, error)
	ListCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error)
	// HasCreditLog 按幂等键查询流水是否存在
	HasCreditLog(ctx context.Context, key string) (bool, error)
}

type service struct {
	repo          repository.CreditRepository
	defaultAmount uint64
}

func NewCreditService(repo repository.CreditRepository, cfg Config) Service {
	if cfg.DefaultAmount == 0 {
		cfg.DefaultAmount = DefaultAmount
	}
	return &service{repo: repo, defaultAmount: cfg.DefaultAmount}
}

func (s *service) GetCreditsByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	c, err := s.repo.GetCreditByUID(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return s.repo.InitCredit(ctx, uid, s.defaultAmount)
	}
	return c, err
}

func (s *service) AddCredits(ctx context.Context, credit domain.Credit) error {
	if err := s.checkCredit(credit); err != nil {
		return err
	}
	// 保证先拿到新用户的赠送积分
	if _, err := s.GetCreditsByUID(ctx, credit.Uid); err != nil {
		return err
	}
	_, err := s.repo.AddCredits(ctx, credit)
	return err
}

func (s *service) DeductCredits(ctx context.Context, credit domain.Credit) (uint64, error) {
	if err := s.checkCredit(credit); err != nil {
		return 0, err
	}
	if _, err := s.GetCreditsByUID(ctx, credit.Uid); err != nil {
		return 0, err
	}
	c, err := s.repo.DeductCredits(ctx, credit)
	if err != nil {
		return 0, err
	}
	return c.TotalAmount, nil
}

func (s *service) ListCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error) {
	return s.repo.ListCreditLogs(ctx, uid, offset, limit)
}

func (s *service) HasCreditLog(ctx context.Context, key string) (bool, error) {
	return s.repo.HasCreditLog(ctx, key)
}

func (s *service) checkCredit(credit domain.Credit) error {
	if len(credit.Logs) != 1 {
		return fmt.Errorf("%w, 流水数量 %d", ErrInvalidCreditLog, len(credit.Logs))
	}
	l := credit.Logs[0]
	if l.ChangeAmount <= 0 || l.Key == "" {
		return fmt.Errorf("%w, key %q, amount %d", ErrInvalidCreditLog, l.Key, l.ChangeAmount)
	}
	return nil
}
