package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"mbapi/constant"
	"mbapi/db"
	"mbapi/helper"
	"mbapi/model"
	"mbapi/validator"
)

// SyncOrders kicks off an order sync for the paid-time range and returns
// the task id to poll.
func SyncOrders(c echo.Context) error {
	defer c.Request().Body.Close()

	d := map[string]string{}
	if err := c.Bind(&d); err != nil {
		return c.String(http.StatusBadRequest, "")
	}

	errs := validator.SyncOrdersValidator(d)
	if len(errs) > 0 {
		payload := &PayloadError{
			Errors: errs,
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	startTime := d["start_time"]
	endTime := d["end_time"]

	task := helper.RunTask(constant.TASK_SYNC_ORDERS, func() (string, error) {
		return helper.SyncOrders(startTime, endTime)
	})

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "started",
		"task_id": task.ID,
	})
}

// TaskResult reports a background task's state.
func TaskResult(c echo.Context) error {
	taskId, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		payload := &PayloadError{
			Errors: "Task not found",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	task := model.Task{}
	db.DbManager().Where("id = ?", taskId).First(&task)
	if task.ID == 0 {
		payload := &PayloadError{
			Errors: "Task not found",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	if task.Status == constant.STATUS_TASK_PENDING {
		return c.JSON(http.StatusOK, echo.Map{"task_status": "pending"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"task_status": "completed",
		"result":      task.Result,
	})
}

// ListTasks is the admin view over recent background tasks.
func ListTasks(c echo.Context) error {
	tasks := []*model.Task{}
	db.DbManager().Order("created_at desc").Limit(50).Find(&tasks)

	payload := &PayloadSuccess{
		Data: tasks,
	}
	return c.JSON(http.StatusOK, payload)
}
