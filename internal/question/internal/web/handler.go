package web

import (
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcards/internal/question/internal/domain"
	"github.com/ecodeclub/qcards/internal/question/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	questions := server.Group("/question")
	questions.GET("/today", ginx.W(h.Today))
	questions.POST("/list", ginx.B[ListReq](h.List))
	questions.POST("/detail", ginx.B[Qid](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

// Today 所有人同一天看到同一道题。
// "今天"在这里取服务器本地日期，往下传，底下不再碰时钟
func (h *Handler) Today(ctx *ginx.Context) (ginx.Result, error) {
	date := time.Now().Format(time.DateOnly)
	q, err := h.svc.Today(ctx, date)
	if errors.Is(err, service.ErrNoActiveQuestion) {
		return questionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(q),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	qs, total, err := h.svc.PubList(ctx, req.Offset, req.Limit, req.Category)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: QuestionList{
			Total: total,
			Questions: slice.Map(qs, func(idx int, src domain.Question) Question {
				return newQuestion(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	q, err := h.svc.PubDetail(ctx, req.Qid)
	if errors.Is(err, service.ErrQuestionNotFound) {
		return questionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(q),
	}, nil
}
