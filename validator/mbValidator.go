package validator

import (
	"net/url"
	"time"
)

const datetimeLayout = "2006-01-02 15:04:05"

func SyncOrdersValidator(data map[string]string) url.Values {
	errs := url.Values{}
	if data["start_time"] == "" {
		errs.Add("start_time", "The start_time is required!")
	}
	if data["end_time"] == "" {
		errs.Add("end_time", "The end_time is required!")
	}
	if data["start_time"] != "" {
		if _, err := time.Parse(datetimeLayout, data["start_time"]); err != nil {
			errs.Add("start_time", "The start_time format must be YYYY-MM-DD HH:MM:SS!")
		}
	}
	if data["end_time"] != "" {
		if _, err := time.Parse(datetimeLayout, data["end_time"]); err != nil {
			errs.Add("end_time", "The end_time format must be YYYY-MM-DD HH:MM:SS!")
		}
	}
	return errs
}

func SqlQueryValidator(sqlStr string) url.Values {
	errs := url.Values{}
	if sqlStr == "" {
		errs.Add("sql", "SQL语句不能为空")
	}
	return errs
}
