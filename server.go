package main

// set default UTC time zone
import _ "mbapi/tzinit"

import (
	"mbapi/config"
	"mbapi/cron"
	"mbapi/db"
	"mbapi/helper"
	"mbapi/route"
)

func main() {
	db.Init()
	helper.ReloadCatalogs()
	go cron.Init1()
	e := route.Init()

	config := config.GetConfig()

	e.Server.Addr = ":" + config.RUN_PORT

	e.Logger.Fatal(e.Start(":" + config.RUN_PORT))
}
