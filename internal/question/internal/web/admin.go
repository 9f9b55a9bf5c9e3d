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

// AdminHandler 管理端的题库维护接口，挂在 admin server 上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	questions := server.Group("/question")
	questions.POST("/save", ginx.B[SaveReq](h.Save))
	questions.POST("/update-status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	questions.POST("/list", ginx.B[ListReq](h.List))
	questions.POST("/detail", ginx.B[Qid](h.Detail))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	if req.Question.Content == "" {
		return invalidInputResult, nil
	}
	id, err := h.svc.Save(ctx, req.Question.toDomain(), time.Now().Format(time.DateOnly))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.Qid, req.Active, time.Now().Format(time.DateOnly))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	qs, total, err := h.svc.List(ctx, req.Offset, req.Limit, req.Category)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	q, err := h.svc.Detail(ctx, req.Qid)
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
