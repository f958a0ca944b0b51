package middleware

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/chatterdoc/internal/pkg/ectx"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// CheckAPIKeyBuilder 从 Authorization 头里面取出 API Key，
// 支持 "Bearer <key>" 和直接传 key 两种写法。Key 是否有效由业务校验
type CheckAPIKeyBuilder struct {
	logger *elog.Component
}

func NewCheckAPIKeyBuilder() *CheckAPIKeyBuilder {
	return &CheckAPIKeyBuilder{logger: elog.DefaultLogger}
}

func (b *CheckAPIKeyBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := strings.TrimSpace(strings.TrimPrefix(ctx.GetHeader(authorizationHeader), bearerPrefix))
		if key == "" {
			b.logger.Warn("缺少 API Key", elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: http.StatusUnauthorized,
				Msg:  "缺少 API Key",
			})
			return
		}
		newCtx := ectx.CtxWithAPIKey(ctx.Request.Context(), key)
		ctx.Request = ctx.Request.WithContext(newCtx)
	}
}
