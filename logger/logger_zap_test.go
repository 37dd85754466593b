package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golangid/weathertogo/logger"
	"go.uber.org/zap/zapcore"
)

func initBuffer(opts ...logger.OptionFunc) *bytes.Buffer {
	buf := new(bytes.Buffer)
	logger.InitZap(append([]logger.OptionFunc{logger.OptionSetWriter(buf)}, opts...)...)
	return buf
}

func TestLog(t *testing.T) {
	logOutput := initBuffer()

	logger.Log(zapcore.InfoLevel, "message sent", "ChatbotUsecase", "Send")

	if !bytes.Contains(logOutput.Bytes(), []byte(`"message sent"`)) {
		t.Error("Expected log message not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"context":"ChatbotUsecase"`)) {
		t.Error("Expected context not found")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"scope":"Send"`)) {
		t.Error("Expected scope not found")
	}
}

func TestLogLevelFormat(t *testing.T) {
	logOutput := initBuffer()

	logger.LogEf("unable to send message: %s", "timeout")
	logger.LogWf("weather oracle fail open: %d", 503)
	logger.LogIf("webhook %s", "verified")

	for _, want := range []string{
		`"level":"ERROR"`, "unable to send message: timeout",
		`"level":"WARN"`, "weather oracle fail open: 503",
		`"level":"INFO"`, "webhook verified",
	} {
		if !bytes.Contains(logOutput.Bytes(), []byte(want)) {
			t.Errorf("Expected %q not found in %s", want, logOutput.String())
		}
	}
}

func TestLogIfError(t *testing.T) {
	logOutput := initBuffer()

	logger.LogIfError(nil)
	if logOutput.Len() != 0 {
		t.Error("Expected no log for nil error")
	}

	logger.LogIfError(errors.New("connection refused"))
	if !bytes.Contains(logOutput.Bytes(), []byte("connection refused")) {
		t.Error("Expected error message not found")
	}
}

func TestOptionSetLevel(t *testing.T) {
	logOutput := initBuffer(logger.OptionSetLevel(zapcore.WarnLevel))

	logger.LogI("hidden info")
	logger.LogW("visible warning")

	if bytes.Contains(logOutput.Bytes(), []byte("hidden info")) {
		t.Error("Info log must be filtered by warn level")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte("visible warning")) {
		t.Error("Expected warning not found")
	}
}

func TestLogWithField(t *testing.T) {
	logOutput := initBuffer()

	logger.LogWithField(zapcore.InfoLevel, map[string]interface{}{
		"message":    "event routed",
		"sender_id":  "1254459154682919",
		"event_kind": "postback",
	})

	if !bytes.Contains(logOutput.Bytes(), []byte("event routed")) {
		t.Error("Expected message not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"sender_id":"1254459154682919"`)) {
		t.Error("Expected sender_id field not found in log output")
	}
	if !bytes.Contains(logOutput.Bytes(), []byte(`"event_kind":"postback"`)) {
		t.Error("Expected event_kind field not found in log output")
	}
}
