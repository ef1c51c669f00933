package helper

import (
	"fmt"

	"mbapi/constant"
	"mbapi/db"
	"mbapi/model"
)

// RunTask records a background job and runs it in its own goroutine; the
// result endpoint polls the row.
func RunTask(taskType string, fn func() (string, error)) model.Task {
	task := model.Task{TaskType: taskType, Status: constant.STATUS_TASK_PENDING}
	db.DbManager().Create(&task)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				fmt.Println("ERROR MUST FIX: ", err)
			}
		}()
		msg, err := fn()
		if err != nil {
			task.Status = constant.STATUS_TASK_FAIL
			task.Result = err.Error()
		} else {
			task.Status = constant.STATUS_TASK_SUCCESS
			task.Result = msg
		}
		db.DbManager().Save(&task)
	}()
	return task
}
