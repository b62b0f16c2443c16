// Package integration provides CLI integration tests for unitconv.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// unitconvBin is the path to the built unitconv binary.
	unitconvBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetUnitconvBin sets the path to the unitconv binary (called from TestMain).
func SetUnitconvBin(path string) {
	unitconvBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config directory.
type TestEnv struct {
	t      *testing.T
	Config string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build unitconv: %v", buildErr)
	}
	if unitconvBin == "" {
		t.Fatal("unitconv binary not built (unitconvBin is empty)")
	}

	configDir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{t: t, Config: configDir}
}

// CmdResult holds the result of a unitconv command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunUnitconv executes the unitconv CLI with the given arguments.
func (e *TestEnv) RunUnitconv(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(unitconvBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run unitconv: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunUnitconv executes the unitconv CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunUnitconv(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunUnitconv(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("unitconv %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ConvertResult mirrors the JSON output of the convert command.
type ConvertResult struct {
	Value     float64 `json:"value"`
	Dimension string  `json:"dimension"`
	From      string  `json:"from"`
	To        string  `json:"to"`
}

// DimensionInfo mirrors one entry of the dimensions command JSON output.
type DimensionInfo struct {
	Kind     string `json:"kind"`
	Standard string `json:"standard"`
}

// UnitsInfo mirrors the units command JSON output.
type UnitsInfo struct {
	Kind     string   `json:"kind"`
	Standard string   `json:"standard"`
	Patterns []string `json:"patterns"`
}
