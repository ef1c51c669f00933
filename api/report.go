package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"mbapi/constant"
	"mbapi/helper"
)

// DayOrdersReport builds yesterday's report and pushes it to the webhook.
func DayOrdersReport(c echo.Context) error {
	task := helper.RunTask(constant.TASK_DAY_REPORT, helper.DayReport)
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "started",
		"task_id": task.ID,
	})
}

// WeekOrdersReport builds last week's report and pushes it to the webhook.
func WeekOrdersReport(c echo.Context) error {
	task := helper.RunTask(constant.TASK_WEEK_REPORT, helper.WeekReport)
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "started",
		"task_id": task.ID,
	})
}
