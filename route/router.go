package route

import (
	"github.com/labstack/gommon/log"
	"mbapi/api"
	"mbapi/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Init() *echo.Echo {
	e := echo.New()
	e.Logger.SetLevel(log.DEBUG)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Login route
	e.POST("/api/auth/token", api.Login)

	// Create user
	e.POST("/api/auth/create", api.CreateAdmin)

	// catalog imports
	e.GET("/logistic/import_area_code", api.ImportAreaCode)
	e.GET("/logistic/import_post_price", api.ImportPostPrice)

	// order data and postage quotes
	e.GET("/mb/orders", api.ListOrders)
	e.POST("/mb/get_order_info", api.GetOrderInfo)
	e.POST("/mb/get_order_list_info", api.GetOrderListInfo)
	e.POST("/mb/sql-query", api.SqlQuery)

	// background jobs
	e.POST("/mb/sync_orders", api.SyncOrders)
	e.GET("/mb/result/:task_id", api.TaskResult)
	e.GET("/mb/day_orders_report", api.DayOrdersReport)
	e.GET("/mb/week_orders_report", api.WeekOrdersReport)

	// ERP session cookie
	e.GET("/mb/mb_token", api.GetMbToken)
	e.POST("/mb/update_cookie", api.UpdateCookie)

	// Restricted group==================================================
	r := e.Group("/api/")

	// Configure middleware with the custom claims type
	config := middleware.JWTConfig{
		Claims:     &model.JwtCustomClaims{},
		SigningKey: []byte("secret"),
		AuthScheme: "JWT",
	}
	r.Use(middleware.JWTWithConfig(config))

	r.GET("", api.Restricted)

	r.GET("tasks", api.ListTasks)

	return e
}
