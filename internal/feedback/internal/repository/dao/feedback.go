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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Filter struct {
	APIKeyID  int64
	Sentiment string
	Analyzed  *bool
}

type FeedbackDAO interface {
	Create(ctx context.Context, fb Feedback) error
	FindByID(ctx context.Context, id int64) (Feedback, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Feedback, error)
	// List 按照创建时间倒序
	List(ctx context.Context, uid int64, filter Filter, offset, limit int) ([]Feedback, error)
	Count(ctx context.Context, uid int64, filter Filter) (int64, error)
	// UpdateSentiment 同时把反馈标记为已分析
	UpdateSentiment(ctx context.Context, id int64, sentiment string) error
	CountBySentiment(ctx context.Context, uid int64) ([]SentimentCount, error)
}

type feedbackDAO struct {
	db *egorm.Component
}

func NewFeedbackDAO(db *egorm.Component) FeedbackDAO {
	return &feedbackDAO{
		db: db,
	}
}

func (f *feedbackDAO) Create(ctx context.Context, fb Feedback) error {
	now := time.Now().UnixMilli()
	fb.Ctime = now
	fb.Utime = now
	return f.db.WithContext(ctx).Create(&fb).Error
}

func (f *feedbackDAO) FindByID(ctx context.Context, id int64) (Feedback, error) {
	var res Feedback
	err := f.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (f *feedbackDAO) FindByIDs(ctx context.Context, ids []int64) ([]Feedback, error) {
	var res []Feedback
	if len(ids) == 0 {
		return res, nil
	}
	err := f.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (f *feedbackDAO) List(ctx context.Context, uid int64, filter Filter, offset, limit int) ([]Feedback, error) {
	var res []Feedback
	err := f.where(ctx, uid, filter).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (f *feedbackDAO) Count(ctx context.Context, uid int64, filter Filter) (int64, error) {
	var res int64
	err := f.where(ctx, uid, filter).Count(&res).Error
	return res, err
}

func (f *feedbackDAO) where(ctx context.Context, uid int64, filter Filter) *gorm.DB {
	db := f.db.WithContext(ctx).Model(&Feedback{}).Where("uid = ?", uid)
	if filter.APIKeyID > 0 {
		db = db.Where("api_key_id = ?", filter.APIKeyID)
	}
	if filter.Sentiment != "" {
		db = db.Where("sentiment = ?", filter.Sentiment)
	}
	if filter.Analyzed != nil {
		db = db.Where("analyzed = ?", *filter.Analyzed)
	}
	return db
}

func (f *feedbackDAO) UpdateSentiment(ctx context.Context, id int64, sentiment string) error {
	return f.db.WithContext(ctx).
		Model(&Feedback{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sentiment": sentiment,
			"analyzed":  true,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (f *feedbackDAO) CountBySentiment(ctx context.Context, uid int64) ([]SentimentCount, error) {
	var res []SentimentCount
	err := f.db.WithContext(ctx).
		Model(&Feedback{}).
		Select("sentiment, analyzed, COUNT(*) AS cnt").
		Where("uid = ?", uid).
		Group("sentiment, analyzed").
		Scan(&res).Error
	return res, err
}
