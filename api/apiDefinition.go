package api

type PayloadSuccess struct {
	Meta interface{} `json:"meta,omitempty"`
	Data interface{} `json:"data,omitempty"`
}
type PayloadError struct {
	Errors interface{} `json:"message"`
}

/*
====================TASK STATUS LIST=======================
*/
//Created, waiting for the goroutine: PENDING
//Finished: SUCCESS, FAIL (stale PENDING rows are swept to FAIL by cron)
