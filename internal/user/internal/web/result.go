package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcards/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidUserOrPasswordResult = ginx.Result{
		Code: errs.InvalidUserOrPassword.Code,
		Msg:  errs.InvalidUserOrPassword.Msg,
	}
	userDuplicateResult = ginx.Result{
		Code: errs.UserDuplicate.Code,
		Msg:  errs.UserDuplicate.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
