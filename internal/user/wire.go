//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcards/internal/user/internal/repository"
	"github.com/ecodeclub/qcards/internal/user/internal/repository/cache"
	"github.com/ecodeclub/qcards/internal/user/internal/service"
	"github.com/ecodeclub/qcards/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *Module {
	wire.Build(
		initDAO,
		initRegistrationEventProducer,
		cache.NewUserECache,
		repository.NewCachedUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
