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
	"net/http"

	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/errs"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/service"
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
	g := server.Group("/apikey")
	g.POST("/list", ginx.S(h.List))
	g.POST("/generate", ginx.BS[GenerateReq](h.Generate))
	g.POST("/rename", ginx.BS[RenameReq](h.Rename))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	keys, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: APIKeyList{
			Keys: slice.Map(keys, func(idx int, src domain.APIKey) APIKey {
				return newAPIKey(src)
			}),
		},
	}, nil
}

func (h *Handler) Generate(ctx *ginx.Context, req GenerateReq, sess session.Session) (ginx.Result, error) {
	k, err := h.svc.Generate(ctx.Request.Context(), sess.Claims().Uid, req.Name)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAPIKey(k)}, nil
}

func (h *Handler) Rename(ctx *ginx.Context, req RenameReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Rename(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Name)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) errorResult(ctx *ginx.Context, err error) (ginx.Result, error) {
	var (
		status int
		code   errs.ErrorCode
	)
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		status, code = http.StatusForbidden, errs.PermissionDenied
	case errors.Is(err, service.ErrAPIKeyNotFound):
		status, code = http.StatusNotFound, errs.NotFound
	default:
		return systemErrorResult, err
	}
	ctx.JSON(status, ginx.Result{Code: code.Code, Msg: code.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}

func newAPIKey(k domain.APIKey) APIKey {
	return APIKey{
		ID:    k.ID,
		Key:   k.Key,
		Name:  k.Name,
		Ctime: k.Ctime.UnixMilli(),
	}
}
