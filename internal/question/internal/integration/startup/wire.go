//go:build wireinject

package startup

import (
	"github.com/ecodeclub/qcards/internal/question"
	testioc "github.com/ecodeclub/qcards/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() *question.Module {
	wire.Build(question.InitModule, testioc.BaseSet)
	return new(question.Module)
}
