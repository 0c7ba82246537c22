package auth

import (
	"net/http"

	"shift-scheduler/internal/api"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

var login = service.Login

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入
// @Description 驗證 Email 與密碼，回傳 8 小時有效的存取令牌與使用者身分
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.HTTPError
// @Failure     401  {object} api.HTTPError
// @Failure     429  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, issuer *service.TokenIssuer, throttle *service.LoginThrottle) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		res, err := login(c.Request().Context(), db, issuer, throttle, req.Email, req.Password)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Token:     res.Token,
			ExpiresAt: res.ExpiresAt,
			User: api.PrincipalResponse{
				ID:   res.Principal.ID,
				Name: res.Principal.Name,
				Role: string(res.Principal.Role),
			},
		})
	}
}
