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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicatedCreditLog = errors.New("积分流水记录重复")
	ErrCreditNotEnough     = errors.New("积分不足")
	ErrRecordNotFound      = gorm.ErrRecordNotFound
)

type CreditDAO interface {
	FindCreditByUID(ctx context.Context, uid int64) (Credit, error)
	// Init 创建积分主记录，已经存在就直接返回已有的记录
	Init(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error)
	// Upsert 增加积分，没有主记录就创建
	Upsert(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error)
	// Deduct 余额不小于 amount 才会扣减
	Deduct(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error)
	FindCreditLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]CreditLog, error)
	FindCreditLogByKey(ctx context.Context, key string) (CreditLog, error)
}

type creditDAO struct {
	db *egorm.Component
}

func NewCreditGORMDAO(db *egorm.Component) CreditDAO {
	return &creditDAO{db: db}
}

func (g *creditDAO) FindCreditByUID(ctx context.Context, uid int64) (Credit, error) {
	var res Credit
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *creditDAO) Init(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error) {
	var c Credit
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c = Credit{Uid: uid, TotalCredits: amount, Version: 1, Ctime: now, Utime: now}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 并发初始化，别的请求已经创建好了
			return tx.Where("uid = ?", uid).First(&c).Error
		}
		l.Uid, l.Cid = uid, c.Id
		l.CreditChange, l.CreditBalance = amount, amount
		l.Ctime, l.Utime = now, now
		return g.createLog(tx, &l)
	})
	return c, err
}

func (g *creditDAO) Upsert(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error) {
	var c Credit
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c = Credit{Uid: uid, TotalCredits: amount, Version: 1, Ctime: now, Utime: now}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.Assignments(map[string]any{
				"total_credits": gorm.Expr("`total_credits` + ?", amount),
				"version":       gorm.Expr("`version` + 1"),
				"utime":         now,
			}),
		}).Create(&c).Error
		if err != nil {
			return fmt.Errorf("增加积分失败: %w", err)
		}
		if err = tx.Where("uid = ?", uid).First(&c).Error; err != nil {
			return err
		}
		l.Uid, l.Cid = uid, c.Id
		l.CreditChange, l.CreditBalance = amount, c.TotalCredits
		l.Ctime, l.Utime = now, now
		// 流水重复的时候整个事务回滚，积分不会被加两次
		return g.createLog(tx, &l)
	})
	return c, err
}

func (g *creditDAO) Deduct(ctx context.Context, uid int64, amount int64, l CreditLog) (Credit, error) {
	var c Credit
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		// 检查和扣减在同一条语句里面完成
		res := tx.Model(&Credit{}).
			Where("uid = ? AND total_credits >= ?", uid, amount).
			Updates(map[string]any{
				"total_credits": gorm.Expr("`total_credits` - ?", amount),
				"version":       gorm.Expr("`version` + 1"),
				"utime":         now,
			})
		if res.Error != nil {
			return fmt.Errorf("扣减积分失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w, uid %d", ErrCreditNotEnough, uid)
		}
		if err := tx.Where("uid = ?", uid).First(&c).Error; err != nil {
			return err
		}
		l.Uid, l.Cid = uid, c.Id
		l.CreditChange, l.CreditBalance = -amount, c.TotalCredits
		l.Ctime, l.Utime = now, now
		return g.createLog(tx, &l)
	})
	return c, err
}

func (g *creditDAO) createLog(tx *gorm.DB, l *CreditLog) error {
	err := tx.Create(l).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return fmt.Errorf("%w, key %s", ErrDuplicatedCreditLog, l.Key)
		}
	}
	return err
}

func (g *creditDAO) FindCreditLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]CreditLog, error) {
	var res []CreditLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *creditDAO) FindCreditLogByKey(ctx context.Context, key string) (CreditLog, error) {
	var res CreditLog
	err := g.db.WithContext(ctx).Where("`key` = ?", key).First(&res).Error
	return res, err
}
