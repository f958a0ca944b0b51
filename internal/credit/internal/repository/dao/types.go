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

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Credit{}, &CreditLog{})
}

type Credit struct {
	Id           int64 `gorm:"primaryKey;autoIncrement;comment:积分主表自增ID"`
	Uid          int64 `gorm:"not null;uniqueIndex:unq_user_id;comment:用户ID"`
	TotalCredits int64 `gorm:"not null;default:0;comment:可用的积分总数,不会小于0"`
	Version      int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime        int64
	Utime        int64
}

type CreditLog struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:积分流水表自增ID"`
	Key           string `gorm:"type:varchar(64);not null;uniqueIndex:unq_key;comment:幂等键"`
	Uid           int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Cid           int64  `gorm:"not null;comment:积分主记录ID"`
	Biz           string `gorm:"type:varchar(64);not null;index:idx_biz_biz_id;comment:业务类型"`
	BizId         int64  `gorm:"not null;index:idx_biz_biz_id;comment:业务ID"`
	Desc          string `gorm:"type:varchar(255);not null;comment:积分流水描述"`
	CreditChange  int64  `gorm:"not null;comment:积分变动数量,正数为增加,负数为减少"`
	CreditBalance int64  `gorm:"not null;comment:变动后可用的积分总数"`
	Ctime         int64
	Utime         int64
}
