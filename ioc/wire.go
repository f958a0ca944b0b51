//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/chatterdoc/internal/apikey"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/feedback"
	"github.com/ecodeclub/chatterdoc/internal/sentiment"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		credit.InitModule,
		apikey.InitModule,
		sentiment.InitModule,
		feedback.InitModule,
		wire.FieldsOf(new(*credit.Module), "Hdl"),
		wire.FieldsOf(new(*apikey.Module), "Hdl"),
		wire.FieldsOf(new(*feedback.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initMQConsumers,
	)
	return new(App), nil
}
