//go:build wireinject

package startup

import (
	"github.com/ecodeclub/qcards/internal/answer"
	"github.com/ecodeclub/qcards/internal/question"
	testioc "github.com/ecodeclub/qcards/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(queModule *question.Module) *answer.Module {
	wire.Build(answer.InitModule, testioc.BaseSet)
	return new(answer.Module)
}
