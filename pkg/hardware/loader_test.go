package hardware

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhwif/hwif-go/pkg/handle"
)

const actuatorYAML = `
name: single_joint
type: actuator
plugin: simulated_actuator
parameters:
  dt: 0.01
components:
  - name: joint1
    type: joint
    state_interfaces:
      - name: position
        initial_value: "0.5"
      - name: velocity
    command_interfaces:
      - name: velocity
        min: "-2"
        max: "2"
`

const actuatorTOML = `
name = "single_joint"
type = "actuator"
plugin = "simulated_actuator"

[parameters]
dt = "0.01"

[[components]]
name = "joint1"
type = "joint"

  [[components.state_interfaces]]
  name = "position"
  initial_value = "0.5"

  [[components.state_interfaces]]
  name = "velocity"

  [[components.command_interfaces]]
  name = "velocity"
  min = "-2"
  max = "2"
`

func assertActuator(t *testing.T, info *Info) {
	t.Helper()
	assert.Equal(t, "single_joint", info.Name)
	assert.Equal(t, "simulated_actuator", info.Plugin)
	dt, ok := info.Parameter("dt")
	assert.True(t, ok)
	assert.Equal(t, "0.01", dt)

	require.Len(t, info.Components, 1)
	joint := info.Components[0]
	assert.Equal(t, []string{"position", "velocity"}, joint.StateInterfaceNames())
	assert.Equal(t, []string{"velocity"}, joint.CommandInterfaceNames())

	assert.Equal(t, []string{"joint1/position", "joint1/velocity"}, info.DeclaredStateInterfaces())
	assert.Equal(t, []string{"joint1/velocity"}, info.DeclaredCommandInterfaces())

	pos, ok := joint.StateInterface("position")
	require.True(t, ok)
	v, err := pos.Initial()
	require.NoError(t, err)
	assert.True(t, handle.Float64(0.5).Equal(v))

	vel, ok := joint.CommandInterface("velocity")
	require.True(t, ok)
	lo, hi, hasLo, hasHi, err := vel.Limits()
	require.NoError(t, err)
	assert.True(t, hasLo && hasHi)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestParseYAML(t *testing.T) {
	info, err := Parse([]byte(actuatorYAML), FormatYAML)
	require.NoError(t, err)
	assertActuator(t, info)
}

func TestParseTOML(t *testing.T) {
	info, err := Parse([]byte(actuatorTOML), FormatTOML)
	require.NoError(t, err)
	assertActuator(t, info)
}

func TestParseRejectsUnknownYAMLFields(t *testing.T) {
	_, err := Parse([]byte("name: x\nbogus: 1\ncomponents:\n  - name: a\n"), FormatYAML)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "failed to parse YAML", le.Message)
}

func TestParseRejectsUnknownTOMLKeys(t *testing.T) {
	data := actuatorTOML + "\n[[components]]\nname = \"joint2\"\nstate_interfase = []\n"
	_, err := Parse([]byte(data), FormatTOML)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Message, "unknown keys")
	assert.Contains(t, le.Message, "components.state_interfase")

	_, err = Parse([]byte("bogus = 1\n"+actuatorTOML), FormatTOML)
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Message, "bogus")
}

func TestParseValidationError(t *testing.T) {
	_, err := Parse([]byte("name: empty\n"), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDescription))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "actuator.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(actuatorYAML), 0o644))
	info, err := Load(yamlPath)
	require.NoError(t, err)
	assertActuator(t, info)

	tomlPath := filepath.Join(dir, "actuator.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(actuatorTOML), 0o644))
	info, err = Load(tomlPath)
	require.NoError(t, err)
	assertActuator(t, info)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.File)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidFileCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\n"), 0o644))

	_, err := Load(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.File)
	assert.Contains(t, err.Error(), path)
}

func TestMarshalRoundTrip(t *testing.T) {
	info, err := Parse([]byte(actuatorYAML), FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Marshal(info, format)
			require.NoError(t, err)
			back, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, info, back)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("robot.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("robot.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("robot.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("robot"))
}
