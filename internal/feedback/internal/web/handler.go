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

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/errs"
	"github.com/ecodeclub/chatterdoc/internal/feedback/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/pkg/ectx"
	"github.com/ecodeclub/chatterdoc/internal/pkg/middleware"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	maxLimit     = 100
	maxBatchSize = 100
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	errInvalidInput = errors.New("参数错误")
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

// PublicRoutes 接入方使用 API Key 访问，不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/feedback/submit",
		middleware.NewCheckAPIKeyBuilder().Build(),
		ginx.B[SubmitReq](h.Submit))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/feedback")
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/info", ginx.BS[FeedbackID](h.Info))
	g.POST("/stats", ginx.S(h.Stats))
	g.POST("/analyze", ginx.BS[FeedbackID](h.Analyze))
	g.POST("/analyze/batch", ginx.BS[FeedbackIDs](h.BatchAnalyze))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	key, _ := ectx.GetAPIKeyFromCtx(ctx.Request.Context())
	fb, err := h.svc.Submit(ctx.Request.Context(), key, domain.Submission{
		Text:   req.Text,
		Rating: req.Rating,
		Source: ctx.GetHeader("Origin"),
	})
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{
		Data: SubmitResp{
			ID:      fb.ID,
			Message: "Feedback submitted successfully",
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	filter := domain.Filter{
		APIKeyID:  req.APIKeyID,
		Sentiment: domain.Sentiment(req.Sentiment),
		Analyzed:  req.Analyzed,
	}
	switch filter.Sentiment {
	case domain.SentimentUnset, domain.SentimentPositive, domain.SentimentNegative, domain.SentimentNeutral:
	default:
		return h.errorResult(ctx, fmt.Errorf("%w, sentiment %s", errInvalidInput, req.Sentiment))
	}
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = maxLimit
	}

	uid := sess.Claims().Uid
	var (
		eg    errgroup.Group
		fbs   []domain.Feedback
		total int64
	)
	eg.Go(func() error {
		var err error
		fbs, err = h.svc.List(ctx.Request.Context(), uid, filter, req.Offset, req.Limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = h.svc.Count(ctx.Request.Context(), uid, filter)
		return err
	})
	if err := eg.Wait(); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FeedbackList{
			Total: total,
			Feedbacks: slice.Map(fbs, func(idx int, src domain.Feedback) Feedback {
				return newFeedback(src)
			}),
		},
	}, nil
}

func (h *Handler) Info(ctx *ginx.Context, req FeedbackID, sess session.Session) (ginx.Result, error) {
	fb, err := h.svc.Info(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{Data: newFeedback(fb)}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	st, err := h.svc.Stats(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Stats{
			Total:      st.Total,
			Positive:   st.Positive,
			Negative:   st.Negative,
			Neutral:    st.Neutral,
			Unanalyzed: st.Unanalyzed,
		},
	}, nil
}

func (h *Handler) Analyze(ctx *ginx.Context, req FeedbackID, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Analyze(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{
		Data: AnalyzeResp{
			Feedback: newFeedback(a.Feedback),
			Credits:  a.Credits,
		},
	}, nil
}

func (h *Handler) BatchAnalyze(ctx *ginx.Context, req FeedbackIDs, sess session.Session) (ginx.Result, error) {
	if len(req.IDs) == 0 || len(req.IDs) > maxBatchSize {
		return h.errorResult(ctx, fmt.Errorf("%w, 批量分析数量 %d", errInvalidInput, len(req.IDs)))
	}
	res, err := h.svc.BatchAnalyze(ctx.Request.Context(), sess.Claims().Uid, req.IDs)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BatchAnalyzeResp{
			Success:      res.Success,
			Failed:       res.Failed,
			Insufficient: res.Insufficient,
			Credits:      res.Credits,
		},
	}, nil
}

// errorResult 客户端能处理的错误直接写对应的状态码
func (h *Handler) errorResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	var (
		status int
		code   errs.ErrorCode
	)
	switch {
	case errors.Is(err, errInvalidInput),
		errors.Is(err, service.ErrEmptyFeedback),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidText):
		status, code = http.StatusBadRequest, errs.InvalidInput
	case errors.Is(err, service.ErrInvalidAPIKey):
		status, code = http.StatusUnauthorized, errs.InvalidAPIKey
	case errors.Is(err, service.ErrInsufficientCredit):
		status, code = http.StatusPaymentRequired, errs.InsufficientCredit
	case errors.Is(err, service.ErrPermissionDenied):
		status, code = http.StatusForbidden, errs.PermissionDenied
	case errors.Is(err, service.ErrFeedbackNotFound):
		status, code = http.StatusNotFound, errs.FeedbackNotFound
	case errors.Is(err, service.ErrAlreadyAnalyzed):
		status, code = http.StatusConflict, errs.AlreadyAnalyzed
	default:
		return systemErrorResult, err
	}
	h.logger.Warn("反馈请求被拒绝", elog.FieldErr(err), elog.Int("status", status))
	ctx.JSON(status, ginx.Result{Code: code.Code, Msg: code.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}
