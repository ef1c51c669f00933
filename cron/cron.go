package cron

import (
	"fmt"

	"mbapi/db"
	"mbapi/helper"

	"github.com/jasonlvhit/gocron"
)

// UpdateFailTasks sweeps tasks whose goroutine died before writing a
// result.
func UpdateFailTasks() {
	sql1 := `UPDATE tasks
		SET status = "FAIL"
		WHERE created_at < DATE_SUB( NOW(), INTERVAL 30 minute ) AND status = "PENDING";
		`
	db.DbManager().Exec(sql1)
}

func RunDayReport() {
	msg, err := helper.DayReport()
	if err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
		return
	}
	fmt.Println(msg)
}

func RunWeekReport() {
	msg, err := helper.WeekReport()
	if err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
		return
	}
	fmt.Println(msg)
}

func Init1() {
	x := gocron.NewScheduler()
	x.Every(1).Day().At("00:30").Do(helper.SyncLastWeek)
	x.Every(1).Day().At("09:00").Do(RunDayReport)
	x.Every(1).Tuesday().At("10:00").Do(RunWeekReport)
	x.Every(10).Minutes().Do(UpdateFailTasks)
	<-x.Start()
}
