package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"mbapi/services"
)

// GetMbToken shows the saved ERP session cookie and when it was updated.
func GetMbToken(c echo.Context) error {
	token, err := services.LoadToken()
	if err != nil {
		payload := &PayloadError{
			Errors: "token文件读取失败",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"cookie":      token.Cookie,
		"update_time": token.UpdateTime,
	})
}

// UpdateCookie replaces the ERP session cookie.
func UpdateCookie(c echo.Context) error {
	defer c.Request().Body.Close()

	d := map[string]string{}
	if err := c.Bind(&d); err != nil {
		return c.String(http.StatusBadRequest, "")
	}
	if d["c_value"] == "" {
		payload := &PayloadError{
			Errors: "The c_value is required!",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	if _, err := services.SaveToken(d["c_value"]); err != nil {
		payload := &PayloadError{
			Errors: "token文件写入失败",
		}
		return c.JSON(http.StatusBadRequest, payload)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "cookie更新成功",
	})
}
