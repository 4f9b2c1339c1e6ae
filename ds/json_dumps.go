package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON renders t for log lines and error messages.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
