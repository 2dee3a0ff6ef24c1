package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(" info "))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(""))
}

func TestSetup_Writer(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr); logrus.SetLevel(logrus.InfoLevel) })

	var buf bytes.Buffer
	Setup(LoggerSetupParams{LogLevel: "info", Output: &buf})

	logrus.Debug("hidden")
	logrus.Info("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetup_File(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr); logrus.SetLevel(logrus.InfoLevel) })

	name := filepath.Join(t.TempDir(), "logs", "gymrat")
	Setup(LoggerSetupParams{LogFileName: name, LogLevel: "warn"})
	logrus.Warn("to file")

	data, err := os.ReadFile(name + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
