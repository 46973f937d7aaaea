package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&buf, level)
	l.Color = false
	l.now = func() time.Time { return time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLoggerLineFormat(t *testing.T) {
	l, buf := newTestLogger(LevelTrace)
	l.Infof("volume %dx%dx%d", 64, 64, 64)

	got := buf.String()
	if !strings.HasPrefix(got, "13:04:05 INFO  logger_test.go:") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.HasSuffix(got, ": volume 64x64x64\n") {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestLoggerLevelGate(t *testing.T) {
	tests := []struct {
		name  string
		min   Level
		emit  func(l *Logger)
		wants bool
	}{
		{"trace below info", LevelInfo, func(l *Logger) { l.Tracef("x") }, false},
		{"debug below info", LevelInfo, func(l *Logger) { l.Debugf("x") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Infof("x") }, true},
		{"warn above info", LevelInfo, func(l *Logger) { l.Warnf("x") }, true},
		{"error above warn", LevelWarn, func(l *Logger) { l.Errorf("x") }, true},
		{"fatal always above", LevelError, func(l *Logger) { l.Fatalf("x") }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := newTestLogger(tc.min)
			tc.emit(l)
			if got := buf.Len() > 0; got != tc.wants {
				t.Errorf("wrote=%v, want %v (output %q)", got, tc.wants, buf.String())
			}
		})
	}
}

func TestLoggerQuiet(t *testing.T) {
	l, buf := newTestLogger(LevelTrace)
	l.Quiet = true
	l.Fatalf("should not appear")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}

	l.Quiet = false
	l.Warnf("visible")
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("expected WARN line, got %q", buf.String())
	}
}

func TestLoggerColor(t *testing.T) {
	l, buf := newTestLogger(LevelTrace)
	l.Color = true
	l.Errorf("boom")
	if !strings.Contains(buf.String(), levelColors[LevelError]+"ERROR") {
		t.Errorf("missing level color in %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelTrace, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("LevelWarn.String() = %q", LevelWarn.String())
	}
	if Level(42).String() != "LEVEL(42)" {
		t.Errorf("out of range level = %q", Level(42).String())
	}
}
