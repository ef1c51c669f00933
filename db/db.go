package db

import (
	"fmt"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	"mbapi/config"
	"mbapi/model"
)

var db *gorm.DB
var err error

func Init() {
	configuration := config.GetConfig()
	connectString := fmt.Sprintf("%s:%s@(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", configuration.DB_USERNAME, configuration.DB_PASSWORD, configuration.DB_HOST, configuration.DB_NAME)
	db, err = gorm.Open("mysql", connectString)
	if err != nil {
		panic("DB Connection Error")
	}
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Order{})
	db.AutoMigrate(&model.OrderItem{})
	db.AutoMigrate(&model.AreaCode{})
	db.AutoMigrate(&model.PostPrice{})
	db.AutoMigrate(&model.Task{})
}

func DbManager() *gorm.DB {
	return db
}
