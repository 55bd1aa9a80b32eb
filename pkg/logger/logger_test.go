package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLevels_RouteToExpectedStream(t *testing.T) {
	color.NoColor = true

	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })

	LogInfo("hello %s", "world")
	LogSuccess("done")
	LogWarn("careful %d", 3)
	LogError("broken: %v", "disk")

	assert.Contains(t, out.String(), "[INFO] hello world")
	assert.Contains(t, out.String(), "[OK] done")
	assert.Contains(t, out.String(), "[WARN] careful 3")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "[ERR] broken: disk")
}

func TestLogServerStart_PrintsURLs(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	SetOutput(&out, nil)
	t.Cleanup(func() { SetOutput(nil, nil) })

	LogServerStart("Light-Lock", 9981, "https://gallery.example.com")

	assert.Contains(t, out.String(), "http://localhost:9981")
	assert.Contains(t, out.String(), "https://gallery.example.com")
}
