package constant

// task status constant
const (
	STATUS_TASK_PENDING string = "PENDING"
	STATUS_TASK_SUCCESS string = "SUCCESS"
	STATUS_TASK_FAIL    string = "FAIL"
)

// task type constant
const (
	TASK_SYNC_ORDERS string = "SYNC_ORDERS"
	TASK_DAY_REPORT  string = "DAY_REPORT"
	TASK_WEEK_REPORT string = "WEEK_REPORT"
)

// order status text as the ERP shows it
const ORDER_STATUS_SENT string = "已发货"

const DATE_LAYOUT_ISO string = "2006-01-02"

const DATETIME_LAYOUT string = "2006-01-02 15:04:05"
