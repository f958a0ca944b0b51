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

import "github.com/ego-component/egorm"

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Feedback{})
}

type Feedback struct {
	// ID 由 snowflake 生成
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Uid       int64  `gorm:"column:uid;not null;index:idx_uid_ctime,priority:1;comment:所有者"`
	APIKeyID  int64  `gorm:"column:api_key_id;not null;index;default:0"`
	Text      string `gorm:"column:text;type:text"`
	Rating    int    `gorm:"column:rating;type:tinyint;not null;default:0;comment:0 表示没有评分"`
	Source    string `gorm:"column:source;type:varchar(512);not null;default:''"`
	Sentiment string `gorm:"column:sentiment;type:varchar(16);not null;default:'';comment:positive negative neutral"`
	Analyzed  bool   `gorm:"column:analyzed;not null;default:false"`
	Ctime     int64  `gorm:"index:idx_uid_ctime,priority:2"`
	Utime     int64
}

func (Feedback) TableName() string {
	return "feedbacks"
}

type SentimentCount struct {
	Sentiment string
	Analyzed  bool
	Cnt       int64
}
