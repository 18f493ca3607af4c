package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Notice message missing from output %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("debug %s", "detail")
	if !strings.Contains(buf.String(), "debug detail") {
		t.Errorf("Debug message missing at Debug level, got %q", buf.String())
	}
}
