package tzinit

import (
	"os"
	"time"
)

// Force UTC before anything else reads the local zone.
func init() {
	os.Setenv("TZ", "UTC")
	time.Local = time.UTC
}
