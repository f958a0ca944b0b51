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
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/errs"
	"github.com/ecodeclub/chatterdoc/internal/credit/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/credit")
	g.POST("/detail", ginx.S(h.QueryCredits))
	g.POST("/logs", ginx.BS[Page](h.ListLogs))
}

func (h *Handler) QueryCredits(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.GetCreditsByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Credit{Amount: c.TotalAmount},
	}, nil
}

func (h *Handler) ListLogs(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	const maxLimit = 100
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	logs, err := h.svc.ListCreditLogs(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreditLogList{
			Logs: slice.Map(logs, func(idx int, src domain.CreditLog) CreditLog {
				return CreditLog{
					Key:     src.Key,
					Amount:  src.ChangeAmount,
					Balance: src.Balance,
					Biz:     src.Biz,
					BizId:   src.BizId,
					Desc:    src.Desc,
					Ctime:   src.Ctime,
				}
			}),
		},
	}, nil
}
