package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcards/internal/question/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	questionNotFoundResult = ginx.Result{
		Code: errs.QuestionNotFound.Code,
		Msg:  errs.QuestionNotFound.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
