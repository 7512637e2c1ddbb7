package demo

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patterns/internal/config"
	"patterns/internal/render"
)

func fixedNow() time.Time {
	return time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
}

func TestRunAdapter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunAdapter(&buf, Options{Now: fixedNow}))
	assert.Equal(t, "Using Adapter pattern:\nAdapter: Adaptee's specific request: 2025-01-02 03:04:05\n", buf.String())
}

func TestRunAdapter_RealClock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunAdapter(&buf, Options{}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "Adapter: Adaptee's specific request: "))
}

func TestRunBridge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBridge(&buf, Options{}))
	assert.Equal(t, "Sending EMAIL: User Message: Welcome aboard!\nSending SMS: System Alert: CPU temperature high!\n", buf.String())
}

func TestRunBridge_CustomContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBridge(&buf, Options{UserMessage: "hi", AlertMessage: "disk full"}))
	assert.Equal(t, "Sending EMAIL: User Message: hi\nSending SMS: System Alert: disk full\n", buf.String())
}

func TestRunBridge_HonorsFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBridge(&buf, Options{Format: render.FormatYAML}))
	assert.Equal(t, "# Using Bridge pattern:\nSending EMAIL: User Message: Welcome aboard!\nSending SMS: System Alert: CPU temperature high!\n", buf.String())

	buf.Reset()
	require.NoError(t, RunBridge(&buf, Options{Format: render.FormatStyled}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Using Bridge pattern:")
	assert.Equal(t, "Sending EMAIL: User Message: Welcome aboard!", lines[1])
}

func TestRunBuilder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBuilder(&buf, Options{}))

	want := "Minimal Igloo:\n" +
		"House (basement: Ice bars, structure: Ice blocks, roof: , interior: )\n\n" +
		"Full Stone House:\n" +
		"House (basement: Concrete foundation, structure: Stone walls, roof: Wooden roof, interior: Plastered interior with heating)\n" +
		"Custom (step-by-step) Stone House:\n" +
		"House (basement: Concrete foundation, structure: Stone walls, roof: , interior: )\n"
	assert.Equal(t, want, buf.String())
}

func TestRunBuilder_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunBuilder(&buf, Options{Format: render.FormatYAML}))
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "---\n"))
	assert.Contains(t, out, "name: Minimal Igloo")
	assert.Contains(t, out, "interior: Plastered interior with heating")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.GlobalSettings.Output = "styled"
	cfg.Bridge.UserMessage = "custom"

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, render.FormatStyled, opts.Format)
	assert.Equal(t, "custom", opts.UserMessage)

	cfg.GlobalSettings.Output = "html"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}

func TestAllAndLookup(t *testing.T) {
	names := []string{}
	for _, d := range All() {
		names = append(names, d.Name)
		assert.NotNil(t, d.Run)
		assert.NotEmpty(t, d.Description)
	}
	assert.Equal(t, []string{"adapter", "bridge", "builder"}, names)

	d, ok := Lookup("bridge")
	require.True(t, ok)
	assert.Equal(t, "Bridge", d.Title)

	_, ok = Lookup("visitor")
	assert.False(t, ok)
}
