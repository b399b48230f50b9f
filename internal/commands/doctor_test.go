package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCommand_Help(t *testing.T) {
	cmd := &DoctorCommand{}
	help := cmd.Help()

	for _, expected := range []string{"doctor", "locator", "Exit codes", "--help"} {
		if !strings.Contains(help, expected) {
			t.Errorf("Help output should contain '%s', but got: %s", expected, help)
		}
	}
}

func TestDoctorCommand_Synopsis(t *testing.T) {
	cmd := &DoctorCommand{}
	assert.Equal(t, "Diagnose embedded interpreter discovery", cmd.Synopsis())
}

func TestDoctorCommand_Run_Help(t *testing.T) {
	cmd := &DoctorCommand{}
	assert.Equal(t, 0, cmd.Run([]string{"--help"}))
}

func TestDoctorCommand_Run_InvalidFlag(t *testing.T) {
	cmd := &DoctorCommand{}
	assert.Equal(t, 2, cmd.Run([]string{"--invalid-flag"}))
}

func TestDoctorCommand_Run_EverythingResolves(t *testing.T) {
	fake := newFakeEngine(t, fakePipOKScript)

	cmd := &DoctorCommand{}
	code := cmd.Run([]string{"-c", missingConfig(t), "--editor-exe", fake.editorExe})
	assert.Equal(t, 0, code)
}

func TestDoctorCommand_Run_ReportRowsAlign(t *testing.T) {
	fake := newFakeEngine(t, fakePipOKScript)

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = orig })

	cmd := &DoctorCommand{}
	code := cmd.Run([]string{"-c", missingConfig(t), "--editor-exe", fake.editorExe})
	require.NoError(t, w.Close())
	os.Stdout = orig
	assert.Equal(t, 0, code)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	// Every report row pads its label so the values line up in one column
	var valueCols []int
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "  ") || !strings.Contains(line, ":") {
			continue
		}
		rest := line[strings.Index(line, ":")+1:]
		valueCols = append(valueCols, len(line)-len(strings.TrimLeft(rest, " ")))
	}
	require.Len(t, valueCols, 4)
	for _, col := range valueCols[1:] {
		assert.Equal(t, valueCols[0], col)
	}
}

func TestDoctorCommand_Run_InterpreterMissing(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "Engine", "Binaries", "Linux")
	require.NoError(t, os.MkdirAll(binDir, 0o750))
	editorExe := filepath.Join(binDir, "UnrealEditor")
	require.NoError(t, os.WriteFile(editorExe, []byte("editor"), 0o600))

	cmd := &DoctorCommand{}
	code := cmd.Run([]string{"-c", missingConfig(t), "--editor-exe", editorExe})
	assert.Equal(t, 1, code)
}
