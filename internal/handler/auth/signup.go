package auth

import (
	"net/http"

	"shift-scheduler/internal/api"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

var signup = service.Signup

// SignupHandler 自助註冊，角色固定為 user
// @Summary     註冊
// @Description 建立一般使用者帳號；employee_code 未填時為 EMP-NEW，部門固定為 General
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.SignupRequest true "註冊資料"
// @Success     201  {object} api.SignupResponse
// @Failure     400  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
		}

		user, err := signup(c.Request().Context(), db, service.SignupInput{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			EmployeeCode: req.EmployeeCode,
		})
		if err != nil {
			return err
		}

		return c.JSON(http.StatusCreated, api.SignupResponse{User: api.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		}})
	}
}
