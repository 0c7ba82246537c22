package employees

import (
	"net/http"

	"shift-scheduler/internal/api"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/middleware"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

var listEmployees = service.ListEmployees

// ListHandler 列出可排班的員工（僅限 admin）
// @Summary     List employees
// @Tags        employees
// @Produce     json
// @Success     200 {array}  api.EmployeeResponse
// @Failure     401 {object} api.HTTPError
// @Failure     403 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /employees [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return service.ErrUnauthenticated
		}

		list, err := listEmployees(c.Request().Context(), db, p)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewEmployeeList(list))
	}
}
