package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcards/internal/answer/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateAnswerResult = ginx.Result{
		Code: errs.DuplicateAnswer.Code,
		Msg:  errs.DuplicateAnswer.Msg,
	}
	questionUnavailableResult = ginx.Result{
		Code: errs.QuestionUnavailable.Code,
		Msg:  errs.QuestionUnavailable.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	answerNotFoundResult = ginx.Result{
		Code: errs.AnswerNotFound.Code,
		Msg:  errs.AnswerNotFound.Msg,
	}
)
