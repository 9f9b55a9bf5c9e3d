package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/qcards/internal/answer/internal/domain"
	"github.com/ecodeclub/qcards/internal/answer/internal/repository/dao"
)

var (
	ErrAnswerNotFound  = dao.ErrDataNotFound
	ErrDuplicateAnswer = dao.ErrDuplicateAnswer
)

//go:generate mockgen -source=./answer.go -package=repomocks -destination=mocks/answer.mock.go AnswerRepository
type AnswerRepository interface {
	Create(ctx context.Context, a domain.Answer) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Answer, error)
	FindByUidQidDate(ctx context.Context, uid, qid int64, date string) (domain.Answer, error)
	// HasAnswered (uid, qid, date) 三元组的存在性检查，
	// 只是提前拦截的优化，真正的唯一性由存储层的唯一索引保证
	HasAnswered(ctx context.Context, uid, qid int64, date string) (bool, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	AnsweredDates(ctx context.Context, uid int64) ([]string, error)
}

type answerRepository struct {
	dao dao.AnswerDAO
}

func NewAnswerRepository(d dao.AnswerDAO) AnswerRepository {
	return &answerRepository{dao: d}
}

func (r *answerRepository) Create(ctx context.Context, a domain.Answer) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(a))
}

func (r *answerRepository) FindById(ctx context.Context, id int64) (domain.Answer, error) {
	a, err := r.dao.FindById(ctx, id)
	return r.toDomain(a), err
}

func (r *answerRepository) FindByUidQidDate(ctx context.Context, uid, qid int64, date string) (domain.Answer, error) {
	a, err := r.dao.FindByUidQidDate(ctx, uid, qid, date)
	return r.toDomain(a), err
}

func (r *answerRepository) HasAnswered(ctx context.Context, uid, qid int64, date string) (bool, error) {
	return r.dao.Exists(ctx, uid, qid, date)
}

func (r *answerRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, error) {
	as, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Answer) domain.Answer {
		return r.toDomain(src)
	}), nil
}

func (r *answerRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *answerRepository) AnsweredDates(ctx context.Context, uid int64) ([]string, error) {
	return r.dao.DistinctDates(ctx, uid)
}

func (r *answerRepository) toDomain(a dao.Answer) domain.Answer {
	return domain.Answer{
		Id:           a.Id,
		Uid:          a.Uid,
		Qid:          a.Qid,
		Content:      a.Content,
		Feedback:     a.Feedback.String,
		AnsweredDate: a.AnsweredDate,
		Utime:        time.UnixMilli(a.Utime),
	}
}

func (r *answerRepository) toEntity(a domain.Answer) dao.Answer {
	return dao.Answer{
		Id:      a.Id,
		Uid:     a.Uid,
		Qid:     a.Qid,
		Content: a.Content,
		Feedback: sql.NullString{
			String: a.Feedback,
			Valid:  a.Feedback != "",
		},
		AnsweredDate: a.AnsweredDate,
	}
}
