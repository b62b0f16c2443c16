// CLI integration tests for unitconv.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain builds the unitconv binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "unitconv-test-*")
	if err != nil {
		SetBuildErr(err)
		os.Exit(1)
	}
	binPath := filepath.Join(tmpDir, "unitconv")
	SetUnitconvBin(binPath)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/unitconv")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		SetBuildErr(&BuildError{
			Err:    err,
			Output: string(output),
		})
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)

	os.Exit(code)
}

func TestCLI_Version(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("version")

	assert.Contains(t, result.Stdout, "unitconv v")
	assert.Contains(t, result.Stdout, "module:")
}

func TestCLI_Init(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("init")
	assert.Contains(t, result.Stdout, "initialized")

	configPath := filepath.Join(env.Config, "config.yaml")
	data, err := os.ReadFile(configPath)
	require.NoError(t, err, "init should create config.yaml")
	assert.Contains(t, string(data), "precision")

	// Re-running init leaves the existing file alone.
	env.MustRunUnitconv("init")
	again, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestCLI_ConvertMetersToMiles(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("convert", "1609.34", "m", "mi")

	got, err := strconv.ParseFloat(strings.TrimSpace(result.Stdout), 64)
	require.NoError(t, err, "convert output should be a number: %q", result.Stdout)
	assert.InDelta(t, 1.0, got, 1e-6)
}

func TestCLI_ConvertWithMagnitude(t *testing.T) {
	env := NewTestEnv(t)

	// 1 kilometer in meters.
	result := env.MustRunUnitconv("convert", "1", "m", "m", "--from-magnitude", "3")

	got, err := strconv.ParseFloat(strings.TrimSpace(result.Stdout), 64)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-6)
}

func TestCLI_ConvertTemperature(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("convert", "100", "C", "F")

	got, err := strconv.ParseFloat(strings.TrimSpace(result.Stdout), 64)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, got, 1e-6)
}

func TestCLI_ConvertJSON(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("--json", "convert", "1", "eV", "J")

	parsed := ParseJSON[ConvertResult](t, result.Stdout)
	assert.InEpsilon(t, 1.6021766208e-19, parsed.Value, 1e-9)
	assert.Equal(t, "ElectrocaloricStrength", parsed.Dimension)
	assert.Equal(t, "ElectronVolt", parsed.From)
	assert.Equal(t, "Joule", parsed.To)
}

func TestCLI_ConvertIncompatibleUnits(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunUnitconv("convert", "1", "m", "K")

	assert.NotEqual(t, 0, result.ExitCode, "converting length to temperature should fail")
	assert.Contains(t, result.Stderr, "dimensions do not match")
}

func TestCLI_ConvertUnknownUnit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunUnitconv("convert", "1", "furlong", "m")

	assert.NotEqual(t, 0, result.ExitCode)
	assert.Contains(t, result.Stderr, "unknown unit")
}

func TestCLI_Dimensions(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("--json", "dimensions")

	infos := ParseJSON[[]DimensionInfo](t, result.Stdout)
	require.Len(t, infos, 7)

	byKind := make(map[string]string)
	for _, info := range infos {
		byKind[info.Kind] = info.Standard
	}
	assert.Equal(t, "Meter", byKind["Length"])
	assert.Equal(t, "Second", byKind["Time"])
	assert.Equal(t, "Kelvin", byKind["Temperature"])
	assert.Equal(t, "Joule", byKind["ElectrocaloricStrength"])
}

func TestCLI_Units(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunUnitconv("--json", "units", "Length")

	info := ParseJSON[UnitsInfo](t, result.Stdout)
	assert.Equal(t, "Length", info.Kind)
	assert.Equal(t, "Meter", info.Standard)
	assert.NotEmpty(t, info.Patterns)
}

func TestCLI_UnitsUnknownDimension(t *testing.T) {
	env := NewTestEnv(t)

	result := env.RunUnitconv("units", "Charm")

	assert.NotEqual(t, 0, result.ExitCode)
	assert.Contains(t, result.Stderr, "dimension not registered")
}
