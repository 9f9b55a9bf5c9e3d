//go:build wireinject

package question

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/qcards/internal/question/internal/repository"
	"github.com/ecodeclub/qcards/internal/question/internal/repository/cache"
	"github.com/ecodeclub/qcards/internal/question/internal/service"
	"github.com/ecodeclub/qcards/internal/question/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		initDAO,
		cache.NewDailyECache,
		repository.NewCachedRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
