package web

import (
	"github.com/ecodeclub/contesthub/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	duplicateUserResult = ginx.Result{
		Code: errs.DuplicateUser.Code,
		Msg:  errs.DuplicateUser.Msg,
	}
)
