package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevelAndFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	Init("warn", "text")

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected env level debug, got %v", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter, got %T", Log.Formatter)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	Init("", "")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("expected info for unknown level, got %v", Log.GetLevel())
	}
	if got := For("nav").Data["component"]; got != "nav" {
		t.Errorf("component field = %v", got)
	}
}
