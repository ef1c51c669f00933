package services

import (
	"encoding/json"
	"io/ioutil"
	"time"

	"mbapi/config"
	"mbapi/constant"
)

// MbToken is the session cookie used for every ERP call, kept in a small
// JSON file so it survives restarts and can be refreshed over the API.
type MbToken struct {
	Cookie     string `json:"cookie"`
	UpdateTime string `json:"update_time"`
}

func LoadToken() (MbToken, error) {
	token := MbToken{}
	b, err := ioutil.ReadFile(config.GetConfig().MB_TOKEN_FILE)
	if err != nil {
		return token, err
	}
	err = json.Unmarshal(b, &token)
	return token, err
}

func SaveToken(cookie string) (MbToken, error) {
	token := MbToken{
		Cookie:     cookie,
		UpdateTime: time.Now().Format(constant.DATETIME_LAYOUT),
	}
	b, err := json.MarshalIndent(token, "", "    ")
	if err != nil {
		return token, err
	}
	err = ioutil.WriteFile(config.GetConfig().MB_TOKEN_FILE, b, 0644)
	return token, err
}
