package config

import (
	"github.com/tkanos/gonfig"
	"path"
	"path/filepath"
	"runtime"
)

type Configuration struct {
	RUN_PORT    string
	DB_USERNAME string
	DB_PASSWORD string
	DB_PORT     string
	DB_HOST     string
	DB_NAME     string

	SERVER_HOST string

	// mabang ERP endpoints, cookie auth
	MB_BASE_URL      string
	MB_TOKEN_FILE    string
	MB_REPORT_URL    string
	MB_REPORT_TOKEN  string

	AWS_BUCKET            string
	AWS_REGION            string
	AWS_ACCESS_KEY_ID     string
	AWS_SECRET_ACCESS_KEY string
}

func GetConfig() Configuration {
	configuration := Configuration{}
	_, dirname, _, _ := runtime.Caller(0)
	filePath := path.Join(filepath.Dir(dirname), "config.json")
	gonfig.GetConf(filePath, &configuration)
	if configuration.MB_BASE_URL == "" {
		configuration.MB_BASE_URL = "https://vip.mabangerp.com/index.php"
	}
	if configuration.MB_TOKEN_FILE == "" {
		configuration.MB_TOKEN_FILE = "mb_token.json"
	}
	return configuration
}
