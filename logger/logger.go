package logger

import (
	"fmt"
	"time"

	"github.com/golangid/weathertogo/candihelper"
)

var debugMode bool

func init() {
	InitZap()
}

// SetDebugMode set local debug mode
func SetDebugMode(mode bool) {
	debugMode = mode
}

// LogWithDefer print step label, returned func print the outcome with elapsed time
func LogWithDefer(str string) (deferFunc func()) {
	start := time.Now()
	fmt.Printf("%s %s ", start.Format(candihelper.TimeFormatLogger), str)
	return func() {
		if r := recover(); r != nil {
			fmt.Printf("\x1b[31;1mERROR: %v\x1b[0m\n", r)
			panic(r)
		}
		fmt.Printf("\x1b[32;1mSUCCESS\x1b[0m (%s)\n", time.Since(start).Round(time.Millisecond))
	}
}

// LogGreen log with green color, debug mode only
func LogGreen(str string) {
	if debugMode {
		fmt.Printf("\x1b[32;2m%s\x1b[0m\n", str)
	}
}
