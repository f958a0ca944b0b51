package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/chatterdoc/internal/apikey"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/feedback"
	"github.com/ecodeclub/chatterdoc/internal/pkg/middleware"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

const submitPath = "/feedback/submit"

func initGinxServer(sp session.Provider,
	apiKeyHdl *apikey.Handler,
	creditHdl *credit.Handler,
	feedbackHdl *feedback.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(initCors())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	feedbackHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	apiKeyHdl.PrivateRoutes(res.Engine)
	creditHdl.PrivateRoutes(res.Engine)
	feedbackHdl.PrivateRoutes(res.Engine)
	return res
}

// initCors 挂件嵌在接入方的页面里，提交反馈允许任意来源，其余接口只给控制台用
func initCors() gin.HandlerFunc {
	origins := econf.GetStringSlice("server.web.allowOrigins")
	console := cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	})
	widget := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		AllowMethods:    []string{http.MethodPost, http.MethodOptions},
	})
	return func(ctx *gin.Context) {
		if ctx.Request.URL.Path == submitPath {
			widget(ctx)
			return
		}
		console(ctx)
	}
}
