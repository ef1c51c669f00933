package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"

	"mbapi/config"
)

// PostReport delivers a rendered report to the configured webhook.
func PostReport(inputs map[string]interface{}) error {
	cfg := config.GetConfig()
	if cfg.MB_REPORT_URL == "" {
		return errors.New("MB_REPORT_URL not configured")
	}

	body := map[string]interface{}{
		"inputs":        inputs,
		"response_mode": "blocking",
		"user":          "abc-123",
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", cfg.MB_REPORT_URL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.MB_REPORT_TOKEN)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	rb, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	result := struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}{}
	if err := json.Unmarshal(rb, &result); err != nil {
		return err
	}
	if result.Data.Status != "succeeded" {
		return errors.New("报告发送失败")
	}
	return nil
}
