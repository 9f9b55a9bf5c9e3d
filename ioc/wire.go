//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/qcards/internal/answer"
	"github.com/ecodeclub/qcards/internal/question"
	"github.com/ecodeclub/qcards/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() *App {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		question.InitModule,
		wire.FieldsOf(new(*question.Module), "Hdl", "AdminHdl"),
		answer.InitModule,
		wire.FieldsOf(new(*answer.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
	)
	return new(App)
}
