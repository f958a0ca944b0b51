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
	"sync"
	"sync/atomic"

	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

func (s *service) BatchAnalyze(ctx context.Context, uid int64, ids []int64) (domain.BatchResult, error) {
	fbs, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return domain.BatchResult{}, err
	}
	fbs = slice.FilterMap(fbs, func(idx int, src domain.Feedback) (domain.Feedback, bool) {
		return src, src.Uid == uid && !src.Analyzed
	})

	var (
		mu      sync.Mutex
		res     domain.BatchResult
		charged bool
		// 出现一次积分不足之后就不再发起新的分析
		stopped atomic.Bool
	)
	var eg errgroup.Group
	eg.SetLimit(s.cfg.BatchConcurrency)
	for _, fb := range fbs {
		eg.Go(func() error {
			if stopped.Load() {
				mu.Lock()
				res.Insufficient++
				mu.Unlock()
				return nil
			}
			a, err := s.analyze(ctx, fb, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Success++
				// 并发扣费，余额取看到的最小值
				if !charged || a.Credits < res.Credits {
					res.Credits = a.Credits
					charged = true
				}
			case errors.Is(err, ErrInsufficientCredit):
				stopped.Store(true)
				res.Insufficient++
			default:
				res.Failed++
				s.logger.Error("批量分析反馈失败",
					elog.FieldErr(err),
					elog.Int64("uid", uid),
					elog.Int64("feedbackId", fb.ID),
				)
			}
			return nil
		})
	}
	_ = eg.Wait()
	if !charged {
		// 一个都没有扣费成功，余额要去查
		c, err := s.creditSvc.GetCreditsByUID(ctx, uid)
		if err != nil {
			return res, err
		}
		res.Credits = c.TotalAmount
	}
	return res, nil
}
