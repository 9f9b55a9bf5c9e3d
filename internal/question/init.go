package question

import (
	"sync"

	"github.com/ecodeclub/qcards/internal/question/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.QuestionDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMQuestionDAO(db)
}
