package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	l := GetLogger("test")
	assert.Same(t, l, GetLogger("test"))

	var buf bytes.Buffer
	SetOutput(&buf)
	DisableLogColor()
	SetLogLevel(logrus.InfoLevel)

	l.Debugf("hidden %d", 1)
	l.Infof("visible %d", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "test[")
	assert.Contains(t, out, "<INFO>: visible 2")
	assert.True(t, strings.HasSuffix(out, "\n"))

	buf.Reset()
	SetLogLevel(logrus.DebugLevel)
	l.WithField("n", 3).Debug("fields")
	assert.Contains(t, buf.String(), "<DEBUG>: fields map[n:3]")
}

func TestSpinnerStops(t *testing.T) {
	var buf bytes.Buffer
	stop := NewSpinner(&buf, "sorting")
	stop()

	assert.NotPanics(t, Spinner("quiet"))
}
