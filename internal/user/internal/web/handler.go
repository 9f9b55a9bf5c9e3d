package web

import (
	"errors"
	"regexp"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcards/internal/user/internal/domain"
	"github.com/ecodeclub/qcards/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

// 粗粒度的邮箱校验，真实性靠（将来的）邮箱验证流程保证
var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 8

type Handler struct {
	svc    service.UserService
	logger *elog.Component
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if !emailRegexp.MatchString(req.Email) ||
		len(req.Password) < minPasswordLen ||
		req.Password != req.ConfirmPassword {
		return invalidInputResult, nil
	}
	u, err := h.svc.Register(ctx, domain.User{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if errors.Is(err, service.ErrUserDuplicate) {
		return userDuplicateResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册即登录
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return invalidUserOrPasswordResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		SN:       u.SN,
		Email:    u.Email,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
