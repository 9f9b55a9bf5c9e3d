//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/qcards/internal/test/ioc"
	"github.com/ecodeclub/qcards/internal/user"
	"github.com/google/wire"
)

func InitModule() *user.Module {
	wire.Build(user.InitModule, testioc.BaseSet)
	return new(user.Module)
}
