package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"mbapi/helper"
	"mbapi/services"
)

// catalog imports: the source files are replaced wholesale, old data stays
// live until the new set commits.

func ImportAreaCode(c echo.Context) error {
	if err := services.FetchCatalogFile("area_code.csv"); err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
	}

	created, err := helper.ImportAreaCode()
	if err != nil {
		if os.IsNotExist(err) {
			payload := &PayloadError{
				Errors: "文件不存在",
			}
			return c.JSON(http.StatusNotFound, payload)
		}
		payload := &PayloadError{
			Errors: fmt.Sprintf("导入失败: %v", err),
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"created": created,
		"deleted": "all",
	})
}

func ImportPostPrice(c echo.Context) error {
	if err := services.FetchCatalogFile("post_price.csv"); err != nil {
		fmt.Println("ERROR MUST FIX: ", err)
	}

	created, err := helper.ImportPostPrice()
	if err != nil {
		if os.IsNotExist(err) {
			payload := &PayloadError{
				Errors: "文件不存在",
			}
			return c.JSON(http.StatusNotFound, payload)
		}
		payload := &PayloadError{
			Errors: fmt.Sprintf("导入失败: %v", err),
		}
		return c.JSON(http.StatusBadRequest, payload)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"created": created,
		"deleted": "all",
	})
}
