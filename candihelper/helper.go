package candihelper

import (
	"fmt"
)

// StringYellow func
func StringYellow(str string) string {
	return fmt.Sprintf("\x1b[33;5m%s\x1b[0m", str)
}

// StringGreen func
func StringGreen(str string) string {
	return fmt.Sprintf("\x1b[32;1m%s\x1b[0m", str)
}
