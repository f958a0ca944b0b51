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
	"time"

	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./feedback.go -destination=./mocks/feedback.mock.go -package=repomocks FeedbackRepository
type FeedbackRepository interface {
	Create(ctx context.Context, fb domain.Feedback) error
	FindByID(ctx context.Context, id int64) (domain.Feedback, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Feedback, error)
	List(ctx context.Context, uid int64, filter domain.Filter, offset, limit int) ([]domain.Feedback, error)
	Count(ctx context.Context, uid int64, filter domain.Filter) (int64, error)
	UpdateSentiment(ctx context.Context, id int64, sentiment domain.Sentiment) error
	Stats(ctx context.Context, uid int64) (domain.Stats, error)
}

type feedbackRepository struct {
	dao dao.FeedbackDAO
}

func NewFeedbackRepository(d dao.FeedbackDAO) FeedbackRepository {
	return &feedbackRepository{
		dao: d,
	}
}

func (f *feedbackRepository) Create(ctx context.Context, fb domain.Feedback) error {
	return f.dao.Create(ctx, f.toEntity(fb))
}

func (f *feedbackRepository) FindByID(ctx context.Context, id int64) (domain.Feedback, error) {
	fb, err := f.dao.FindByID(ctx, id)
	return f.toDomain(fb), err
}

func (f *feedbackRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Feedback, error) {
	res, err := f.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Feedback) domain.Feedback {
		return f.toDomain(src)
	}), nil
}

func (f *feedbackRepository) List(ctx context.Context, uid int64, filter domain.Filter, offset, limit int) ([]domain.Feedback, error) {
	res, err := f.dao.List(ctx, uid, f.toFilter(filter), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Feedback) domain.Feedback {
		return f.toDomain(src)
	}), nil
}

func (f *feedbackRepository) Count(ctx context.Context, uid int64, filter domain.Filter) (int64, error) {
	return f.dao.Count(ctx, uid, f.toFilter(filter))
}

func (f *feedbackRepository) UpdateSentiment(ctx context.Context, id int64, sentiment domain.Sentiment) error {
	return f.dao.UpdateSentiment(ctx, id, sentiment.String())
}

func (f *feedbackRepository) Stats(ctx context.Context, uid int64) (domain.Stats, error) {
	counts, err := f.dao.CountBySentiment(ctx, uid)
	if err != nil {
		return domain.Stats{}, err
	}
	var res domain.Stats
	for _, c := range counts {
		res.Total += c.Cnt
		if !c.Analyzed {
			res.Unanalyzed += c.Cnt
			continue
		}
		switch domain.Sentiment(c.Sentiment) {
		case domain.SentimentPositive:
			res.Positive += c.Cnt
		case domain.SentimentNegative:
			res.Negative += c.Cnt
		case domain.SentimentNeutral:
			res.Neutral += c.Cnt
		}
	}
	return res, nil
}

func (f *feedbackRepository) toFilter(filter domain.Filter) dao.Filter {
	return dao.Filter{
		APIKeyID:  filter.APIKeyID,
		Sentiment: filter.Sentiment.String(),
		Analyzed:  filter.Analyzed,
	}
}

func (f *feedbackRepository) toDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:        fb.ID,
		Uid:       fb.Uid,
		APIKeyID:  fb.APIKeyID,
		Text:      fb.Text,
		Rating:    fb.Rating,
		Source:    fb.Source,
		Sentiment: domain.Sentiment(fb.Sentiment),
		Analyzed:  fb.Analyzed,
		Ctime:     time.UnixMilli(fb.Ctime),
		Utime:     time.UnixMilli(fb.Utime),
	}
}

func (f *feedbackRepository) toEntity(fb domain.Feedback) dao.Feedback {
	return dao.Feedback{
		ID:        fb.ID,
		Uid:       fb.Uid,
		APIKeyID:  fb.APIKeyID,
		Text:      fb.Text,
		Rating:    fb.Rating,
		Source:    fb.Source,
		Sentiment: fb.Sentiment.String(),
		Analyzed:  fb.Analyzed,
	}
}
