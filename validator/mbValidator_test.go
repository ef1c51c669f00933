package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncOrdersValidator(t *testing.T) {
	errs := SyncOrdersValidator(map[string]string{
		"start_time": "2026-08-20 00:00:00",
		"end_time":   "2026-08-27 23:59:59",
	})
	assert.Empty(t, errs)

	errs = SyncOrdersValidator(map[string]string{})
	assert.NotEmpty(t, errs.Get("start_time"))
	assert.NotEmpty(t, errs.Get("end_time"))

	errs = SyncOrdersValidator(map[string]string{
		"start_time": "2026-08-20",
		"end_time":   "2026-08-27 23:59:59",
	})
	assert.Contains(t, errs.Get("start_time"), "YYYY-MM-DD HH:MM:SS")
	assert.Empty(t, errs.Get("end_time"))
}

func TestSqlQueryValidator(t *testing.T) {
	assert.Empty(t, SqlQueryValidator("SELECT * FROM mb_orders"))
	assert.NotEmpty(t, SqlQueryValidator(""))
}
