//go:build wireinject

package answer

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcards/internal/answer/internal/repository"
	"github.com/ecodeclub/qcards/internal/answer/internal/service"
	"github.com/ecodeclub/qcards/internal/answer/internal/web"
	"github.com/ecodeclub/qcards/internal/question"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, queModule *question.Module) *Module {
	wire.Build(
		initDAO,
		initAnswerEventProducer,
		repository.NewAnswerRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*question.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
