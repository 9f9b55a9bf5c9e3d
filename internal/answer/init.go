package answer

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcards/internal/answer/internal/event"
	"github.com/ecodeclub/qcards/internal/answer/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.AnswerDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnswerDAO(db)
}

func initAnswerEventProducer(q mq.MQ) *event.AnswerEventProducer {
	producer, err := event.NewAnswerEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
