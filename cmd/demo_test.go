package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"patterns/internal/bridge"
	"patterns/internal/builder"
	"patterns/internal/config"
)

func TestAdapterCommand(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "adapter")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Using Adapter pattern:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Adapter: Adaptee's specific request: "))
}

func TestAdapterCommand_TimeFormat(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "adapter", "--time-format", "literal")
	require.NoError(t, err)
	assert.Contains(t, out, "Adapter: Adaptee's specific request: literal\n")
}

func TestBridgeCommand_Demo(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "bridge")
	require.NoError(t, err)
	assert.Equal(t, "Sending EMAIL: User Message: Welcome aboard!\nSending SMS: System Alert: CPU temperature high!\n", out)
}

func TestBridgeCommand_ConfiguredContent(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Bridge.UserMessage = "Hi there"
	useConfig(t, cfg)

	out, _, err := execute(t, "bridge")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Sending EMAIL: User Message: Hi there\n"))
}

func TestBridgeCommand_Single(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "bridge", "--kind", "alert", "--transport", "sms", "Disk", "almost", "full")
	require.NoError(t, err)
	assert.Equal(t, "Sending SMS: System Alert: Disk almost full\n", out)

	out, _, err = execute(t, "bridge", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Sending EMAIL: User Message: hello\n", out)
}

func TestBridgeCommand_Errors(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	_, _, err := execute(t, "bridge", "--kind", "alert")
	assert.Error(t, err)

	_, _, err = execute(t, "bridge", "--transport", "pigeon", "hi")
	assert.ErrorIs(t, err, bridge.ErrUnknownTransport)
}

func TestBuilderCommand_Demo(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "builder")
	require.NoError(t, err)
	assert.Equal(t, "Minimal Igloo:\n"+
		"House (basement: Ice bars, structure: Ice blocks, roof: , interior: )\n\n"+
		"Full Stone House:\n"+
		"House (basement: Concrete foundation, structure: Stone walls, roof: Wooden roof, interior: Plastered interior with heating)\n"+
		"Custom (step-by-step) Stone House:\n"+
		"House (basement: Concrete foundation, structure: Stone walls, roof: , interior: )\n", out)
}

func TestBuilderCommand_Single(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "minimal igloo",
			args: []string{"builder", "--variant", "igloo", "--plan", "minimal"},
			want: "House (basement: Ice bars, structure: Ice blocks, roof: , interior: )\n",
		},
		{
			name: "default variant full plan",
			args: []string{"builder", "--plan", "full"},
			want: "House (basement: Concrete foundation, structure: Stone walls, roof: Wooden roof, interior: Plastered interior with heating)\n",
		},
		{
			name: "direct steps",
			args: []string{"builder", "--variant", "igloo", "--steps", "roof,basement"},
			want: "House (basement: Ice bars, structure: , roof: Ice dome, interior: )\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBuilderCommand_YAML(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	out, _, err := execute(t, "builder", "--variant", "stone", "--steps", "basement,structure", "-o", "yaml")
	require.NoError(t, err)

	var house builder.House
	require.NoError(t, yaml.Unmarshal([]byte(strings.TrimPrefix(out, "---\n")), &house))
	assert.Equal(t, builder.House{Basement: "Concrete foundation", Structure: "Stone walls"}, house)
}

func TestBuilderCommand_Errors(t *testing.T) {
	useConfig(t, config.GetDefaultConfig())

	_, _, err := execute(t, "builder", "--variant", "castle")
	assert.ErrorIs(t, err, builder.ErrUnknownVariant)

	_, _, err = execute(t, "builder", "--plan", "deluxe")
	assert.ErrorIs(t, err, builder.ErrUnknownPlan)

	_, _, err = execute(t, "builder", "--steps", "garage")
	assert.ErrorIs(t, err, builder.ErrUnknownStep)
}
