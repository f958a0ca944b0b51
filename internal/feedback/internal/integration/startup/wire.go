//go:build wireinject

package startup

import (
	"github.com/ecodeclub/chatterdoc/internal/apikey"
	"github.com/ecodeclub/chatterdoc/internal/credit"
	"github.com/ecodeclub/chatterdoc/internal/feedback"
	"github.com/ecodeclub/chatterdoc/internal/pkg/snowflake"
	"github.com/ecodeclub/chatterdoc/internal/sentiment"
	testioc "github.com/ecodeclub/chatterdoc/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(apiKeyModule *apikey.Module, creditModule *credit.Module) (*feedback.Module, error) {
	wire.Build(testioc.BaseSet,
		InitIDGenerator,
		sentiment.InitModule,
		feedback.InitModule,
	)
	return new(feedback.Module), nil
}

func InitAPIKeyModule() *apikey.Module {
	wire.Build(testioc.BaseSet, apikey.InitModule)
	return new(apikey.Module)
}

func InitCreditModule() (*credit.Module, error) {
	wire.Build(testioc.BaseSet, credit.InitModule)
	return new(credit.Module), nil
}

func InitIDGenerator() snowflake.Generator {
	g, err := snowflake.NewBizSnowflake(1, feedback.Biz)
	if err != nil {
		panic(err)
	}
	return g
}
