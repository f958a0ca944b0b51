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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/chatterdoc/internal/credit/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrDuplicatedCreditLog = dao.ErrDuplicatedCreditLog
	ErrCreditNotEnough     = dao.ErrCreditNotEnough
	ErrRecordNotFound      = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./repository.go -destination=./mocks/credit.mock.go -package=repomocks CreditRepository
type CreditRepository interface {
	GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error)
	InitCredit(ctx context.Context, uid int64, amount uint64) (domain.Credit, error)
	AddCredits(ctx context.Context, credit domain.Credit) (domain.Credit, error)
	DeductCredits(ctx context.Context, credit domain.Credit) (domain.Credit, error)
	ListCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error)
	HasCreditLog(ctx context.Context, key string) (bool, error)
}

type creditRepository struct {
	dao dao.CreditDAO
}

func NewCreditRepository(dao dao.CreditDAO) CreditRepository {
	return &creditRepository{dao: dao}
}

func (r *creditRepository) GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	c, err := r.dao.FindCreditByUID(ctx, uid)
	return r.toDomainCredit(c), err
}

func (r *creditRepository) InitCredit(ctx context.Context, uid int64, amount uint64) (domain.Credit, error) {
	c, err := r.dao.Init(ctx, uid, int64(amount), dao.CreditLog{
		Key:  fmt.Sprintf("init:%d", uid),
		Biz:  "init",
		Desc: "新用户赠送积分",
	})
	return r.toDomainCredit(c), err
}

func (r *creditRepository) AddCredits(ctx context.Context, credit domain.Credit) (domain.Credit, error) {
	l := r.toCreditLogEntity(credit.Uid, credit.Logs[0])
	c, err := r.dao.Upsert(ctx, credit.Uid, credit.Logs[0].ChangeAmount, l)
	return r.toDomainCredit(c), err
}

func (r *creditRepository) DeductCredits(ctx context.Context, credit domain.Credit) (domain.Credit, error) {
	l := r.toCreditLogEntity(credit.Uid, credit.Logs[0])
	c, err := r.dao.Deduct(ctx, credit.Uid, credit.Logs[0].ChangeAmount, l)
	return r.toDomainCredit(c), err
}

func (r *creditRepository) ListCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error) {
	logs, err := r.dao.FindCreditLogsByUID(ctx, uid, offset, limit)
	return slice.Map(logs, func(idx int, src dao.CreditLog) domain.CreditLog {
		return r.toDomainCreditLog(src)
	}), err
}

func (r *creditRepository) HasCreditLog(ctx context.Context, key string) (bool, error) {
	_, err := r.dao.FindCreditLogByKey(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *creditRepository) toCreditLogEntity(uid int64, src domain.CreditLog) dao.CreditLog {
	return dao.CreditLog{
		Key:   src.Key,
		Uid:   uid,
		BizId: src.BizId,
		Biz:   src.Biz,
		Desc:  src.Desc,
	}
}

func (r *creditRepository) toDomainCredit(d dao.Credit) domain.Credit {
	return domain.Credit{
		Uid:         d.Uid,
		TotalAmount: uint64(d.TotalCredits),
	}
}

func (r *creditRepository) toDomainCreditLog(src dao.CreditLog) domain.CreditLog {
	return domain.CreditLog{
		ID:           src.Id,
		Key:          src.Key,
		Uid:          src.Uid,
		ChangeAmount: src.CreditChange,
		Balance:      uint64(src.CreditBalance),
		Biz:          src.Biz,
		BizId:        src.BizId,
		Desc:         src.Desc,
		Ctime:        src.Ctime,
	}
}
