package controllerImp

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"agritech/pkg/auth/controller"
	"agritech/pkg/auth/repository"
)

// SessionName is the cookie the whole app authenticates on.
const SessionName = "agritech_session"

type authCtrl struct {
	repo  repository.UserRepository
	store sessions.Store
}

func New(repo repository.UserRepository, store sessions.Store) controller.AuthController {
	return &authCtrl{repo: repo, store: store}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	u, err := h.repo.FindByEmail(req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		// Same message for unknown email and wrong password.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	sess, _ := h.store.Get(c.Request(), SessionName)
	sess.Values["user_email"] = u.Email
	sess.Values["user_name"] = u.Name
	sess.Values["user_role"] = u.Role
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   8 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"email": u.Email, "name": u.Name, "role": u.Role,
	})
}

func (h *authCtrl) Logout(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), SessionName)
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	name, _ := c.Get("user_name").(string)
	email, _ := c.Get("user_email").(string)
	role, _ := c.Get("user_role").(string)
	return c.JSON(http.StatusOK, map[string]string{
		"email": email, "name": name, "role": role,
	})
}
