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
	"strings"

	"github.com/ecodeclub/chatterdoc/internal/apikey"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/event/producer"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/repository"
	"github.com/ecodeclub/chatterdoc/internal/pkg/htmlx"
	"github.com/ecodeclub/chatterdoc/internal/pkg/snowflake"
	"github.com/ecodeclub/chatterdoc/internal/sentiment"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// Biz 反馈在积分流水和 ID 生成器里面的业务名
	Biz             = "feedback"
	maxRating       = 5
	maxTextLength   = 5000
	maxSourceLength = 512
)

var (
	ErrInvalidAPIKey      = errors.New("API Key 无效")
	ErrEmptyFeedback      = errors.New("反馈内容和评分不能同时为空")
	ErrInvalidRating      = errors.New("评分超出范围")
	ErrFeedbackNotFound   = errors.New("反馈不存在")
	ErrPermissionDenied   = errors.New("无权访问该反馈")
	ErrAlreadyAnalyzed    = errors.New("反馈已经分析过")
	ErrInvalidText        = sentiment.ErrInvalidText
	ErrInsufficientCredit = sentiment.ErrInsufficientCredit
)

type Config struct {
	// AllowReanalyze 为 true 时已经分析过的反馈可以再次付费分析
	AllowReanalyze   bool `yaml:"allowReanalyze"`
	AutoAnalyze      bool `yaml:"autoAnalyze"`
	BatchConcurrency int  `yaml:"batchConcurrency"`
}

func DefaultConfig() Config {
	return Config{
		AllowReanalyze:   true,
		BatchConcurrency: 4,
	}
}

type Service interface {
	// Submit 接入方使用 API Key 提交反馈
	Submit(ctx context.Context, apiKey string, s domain.Submission) (domain.Feedback, error)
	List(ctx context.Context, uid int64, filter domain.Filter, offset, limit int) ([]domain.Feedback, error)
	Count(ctx context.Context, uid int64, filter domain.Filter) (int64, error)
	Info(ctx context.Context, uid, id int64) (domain.Feedback, error)
	Stats(ctx context.Context, uid int64) (domain.Stats, error)
	// Analyze 扣一个积分，给反馈打上情感标签
	Analyze(ctx context.Context, uid, id int64) (domain.Analysis, error)
	// BatchAnalyze 只分析属于 uid 并且还没有分析过的反馈
	BatchAnalyze(ctx context.Context, uid int64, ids []int64) (domain.BatchResult, error)
	// AutoAnalyze 自动分析新提交的反馈，同一条反馈最多扣一次积分
	AutoAnalyze(ctx context.Context, id int64) error
}

type service struct {
	repo         repository.FeedbackRepository
	apiKeySvc    apikey.Service
	sentimentSvc sentiment.Service
	creditSvc    credit.Service
	producer     producer.SubmittedEventProducer
	idGen        snowflake.Generator
	cfg          Config
	logger       *elog.Component
}

func NewService(repo repository.FeedbackRepository,
	apiKeySvc apikey.Service,
	sentimentSvc sentiment.Service,
	creditSvc credit.Service,
	p producer.SubmittedEventProducer,
	idGen snowflake.Generator,
	cfg Config) Service {
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultConfig().BatchConcurrency
	}
	return &service{
		repo:         repo,
		apiKeySvc:    apiKeySvc,
		sentimentSvc: sentimentSvc,
		creditSvc:    creditSvc,
		producer:     p,
		idGen:        idGen,
		cfg:          cfg,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, apiKey string, sub domain.Submission) (domain.Feedback, error) {
	k, err := s.apiKeySvc.FindByKey(ctx, apiKey)
	if errors.Is(err, apikey.ErrAPIKeyNotFound) {
		return domain.Feedback{}, fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}
	if err != nil {
		return domain.Feedback{}, err
	}
	// 挂件提交的是用户输入，只保存纯文本
	text := htmlx.Truncate(htmlx.StripHTML(sub.Text), maxTextLength)
	if text == "" && sub.Rating == nil {
		return domain.Feedback{}, ErrEmptyFeedback
	}
	fb := domain.Feedback{
		Uid:      k.Uid,
		APIKeyID: k.ID,
		Text:     text,
		Source:   htmlx.Truncate(strings.TrimSpace(sub.Source), maxSourceLength),
	}
	if sub.Rating != nil {
		if *sub.Rating < 0 || *sub.Rating > maxRating {
			return domain.Feedback{}, fmt.Errorf("%w, rating %d", ErrInvalidRating, *sub.Rating)
		}
		fb.Rating = *sub.Rating
	}
	if fb.Source == "" {
		fb.Source = domain.UnknownSource
	}
	id, err := s.idGen.Generate(Biz)
	if err != nil {
		return domain.Feedback{}, err
	}
	fb.ID = id.Int64()
	if err = s.repo.Create(ctx, fb); err != nil {
		return domain.Feedback{}, err
	}

	if s.cfg.AutoAnalyze && strings.TrimSpace(fb.Text) != "" {
		evt := event.FeedbackSubmittedEvent{ID: fb.ID, Uid: fb.Uid}
		if err1 := s.producer.Produce(ctx, evt); err1 != nil {
			// 反馈已经保存了，自动分析失败用户还可以手动分析
			s.logger.Error("发送反馈提交事件失败",
				elog.FieldErr(err1),
				elog.Any("event", evt),
			)
		}
	}
	return fb, nil
}

func (s *service) List(ctx context.Context, uid int64, filter domain.Filter, offset, limit int) ([]domain.Feedback, error) {
	return s.repo.List(ctx, uid, filter, offset, limit)
}

func (s *service) Count(ctx context.Context, uid int64, filter domain.Filter) (int64, error) {
	return s.repo.Count(ctx, uid, filter)
}

func (s *service) Info(ctx context.Context, uid, id int64) (domain.Feedback, error) {
	return s.ownedFeedback(ctx, uid, id)
}

func (s *service) Stats(ctx context.Context, uid int64) (domain.Stats, error) {
	return s.repo.Stats(ctx, uid)
}

func (s *service) Analyze(ctx context.Context, uid, id int64) (domain.Analysis, error) {
	fb, err := s.ownedFeedback(ctx, uid, id)
	if err != nil {
		return domain.Analysis{}, err
	}
	if fb.Analyzed && !s.cfg.AllowReanalyze {
		return domain.Analysis{}, fmt.Errorf("%w, id %d", ErrAlreadyAnalyzed, id)
	}
	return s.analyze(ctx, fb, "")
}

func (s *service) AutoAnalyze(ctx context.Context, id int64) error {
	fb, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w, id %d", ErrFeedbackNotFound, id)
	}
	if err != nil {
		return err
	}
	if fb.Analyzed || strings.TrimSpace(fb.Text) == "" {
		return nil
	}
	// 固定的 key 保证消息重复投递的时候不会重复扣费
	_, err = s.analyze(ctx, fb, fmt.Sprintf("%s-auto:%d", Biz, id))
	return err
}

func (s *service) analyze(ctx context.Context, fb domain.Feedback, key string) (domain.Analysis, error) {
	// 空文本不会扣费
	if strings.TrimSpace(fb.Text) == "" {
		return domain.Analysis{}, fmt.Errorf("%w, id %d", ErrInvalidText, fb.ID)
	}
	resp, err := s.sentimentSvc.Analyze(ctx, sentiment.Request{
		Key:    key,
		Uid:    fb.Uid,
		Biz:    Biz,
		BizID:  fb.ID,
		Text:   fb.Text,
		Rating: fb.Rating,
	})
	if err != nil {
		return domain.Analysis{}, err
	}

	label := domain.Sentiment(resp.Label.String())
	err = s.repo.UpdateSentiment(ctx, fb.ID, label)
	if err != nil {
		s.refund(ctx, fb, resp.Key)
		return domain.Analysis{}, fmt.Errorf("保存分析结果失败: %w", err)
	}
	fb.Sentiment = label
	fb.Analyzed = true
	return domain.Analysis{
		Feedback: fb,
		Credits:  resp.Credits,
	}, nil
}

// refund 分析结果没有保存下来，退还已经扣掉的积分
func (s *service) refund(ctx context.Context, fb domain.Feedback, key string) {
	err := s.creditSvc.AddCredits(ctx, credit.Credit{
		Uid: fb.Uid,
		Logs: []credit.CreditLog{
			{
				Key:          sentiment.RefundKey(key),
				ChangeAmount: 1,
				Biz:          Biz,
				BizId:        fb.ID,
				Desc:         "保存分析结果失败退还",
			},
		},
	})
	if err != nil && !errors.Is(err, credit.ErrDuplicatedCreditLog) {
		s.logger.Error("退还积分失败",
			elog.FieldErr(err),
			elog.Int64("uid", fb.Uid),
			elog.Int64("feedbackId", fb.ID),
			elog.String("key", key),
		)
	}
}

func (s *service) ownedFeedback(ctx context.Context, uid, id int64) (domain.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Feedback{}, fmt.Errorf("%w, id %d", ErrFeedbackNotFound, id)
	}
	if err != nil {
		return domain.Feedback{}, err
	}
	if fb.Uid != uid {
		return domain.Feedback{}, fmt.Errorf("%w, uid %d, id %d", ErrPermissionDenied, uid, id)
	}
	return fb, nil
}
