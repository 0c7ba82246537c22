package shifts

import (
	"net/http"

	"shift-scheduler/internal/api"
	"shift-scheduler/internal/database"
	"shift-scheduler/internal/middleware"
	"shift-scheduler/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	listShifts  = service.ListShifts
	createShift = service.CreateShift
)

// ListHandler 依角色列出班次
// @Summary     List shifts
// @Description admin 看到全部班次；user 只看到自己的。依日期新到舊、開始時間早到晚排序
// @Tags        shifts
// @Produce     json
// @Success     200 {array}  api.ShiftResponse
// @Failure     401 {object} api.HTTPError
// @Failure     500 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /shifts [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return service.ErrUnauthenticated
		}

		shifts, err := listShifts(c.Request().Context(), db, p)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewShiftList(shifts))
	}
}

// CreateHandler 指派班次（僅限 admin）
// @Summary     Assign a shift
// @Description 班次至少 4 小時，且不可與同一員工同日的其他班次重疊（相接可）
// @Tags        shifts
// @Accept      json
// @Produce     json
// @Param       body body     api.ShiftRequest true "班次資料"
// @Success     201  {object} api.ShiftResponse
// @Failure     400  {object} api.HTTPError
// @Failure     401  {object} api.HTTPError
// @Failure     403  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /shifts [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return service.ErrUnauthenticated
		}
		// 先擋角色，避免對非 admin 洩漏欄位驗證訊息
		if !p.IsAdmin() {
			return service.ErrForbidden
		}

		var req api.ShiftRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		created, err := createShift(c.Request().Context(), db, p, service.ShiftInput{
			UserID:    req.UserID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.NewShiftResponse(*created))
	}
}
