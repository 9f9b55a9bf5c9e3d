package user

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcards/internal/user/internal/event"
	"github.com/ecodeclub/qcards/internal/user/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

func initRegistrationEventProducer(q mq.MQ) *event.RegistrationEventProducer {
	producer, err := event.NewRegistrationEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
