package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinsolve/nmrpath/pkg/spin"
)

// TestGetIsotopesCmd_Exists verifies getIsotopesCmd returns a valid
// command.
func TestGetIsotopesCmd_Exists(t *testing.T) {
	cmd := getIsotopesCmd()
	require.NotNil(t, cmd, "Isotopes command should exist")
	assert.Equal(t, "isotopes", cmd.Use)
}

// TestGetIsotopesCmd_ImportFlag verifies --import flag exists.
func TestGetIsotopesCmd_ImportFlag(t *testing.T) {
	cmd := getIsotopesCmd()

	importFlag := cmd.Flags().Lookup("import")
	require.NotNil(t, importFlag, "--import flag should exist")
	assert.Empty(t, importFlag.DefValue)
	assert.Contains(t, importFlag.Usage, "custom isotope")
}

// TestGetIsotopesCmd_HelpText verifies help text content.
func TestGetIsotopesCmd_HelpText(t *testing.T) {
	cmd := getIsotopesCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "nmrpath isotopes --import custom.json",
		"Help should show a JSON import example")
	assert.Contains(t, helpText, "SQLite",
		"Help should mention SQLite databases")
}

// TestSpinString verifies the fractional spin notation.
func TestSpinString(t *testing.T) {
	tests := []struct {
		name         string
		multiplicity int
		expected     string
	}{
		{"spin 1/2", 2, "1/2"},
		{"spin 1", 3, "1"},
		{"spin 3/2", 4, "3/2"},
		{"spin 5/2", 6, "5/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iso := spin.Isotope{SpinMultiplicity: tt.multiplicity}
			assert.Equal(t, tt.expected, spinString(iso))
		})
	}
}

// TestImportIsotopes_Dispatch verifies file extension dispatch: .json
// goes to the JSON importer, anything else to SQLite.
func TestImportIsotopes_Dispatch(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "custom.JSON")
	content := `{
  "6Li": {
    "spin_multiplicity": 3,
    "gyromagnetic_ratio": 6.266,
    "natural_abundance": 7.59,
    "atomic_number": 3
  }
}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(content), 0644))

	reg := spin.NewRegistry()
	count, err := importIsotopes(reg, jsonPath)
	require.NoError(t, err, "uppercase .JSON should dispatch to JSON")
	assert.Equal(t, 1, count)

	// A missing non-JSON path goes through the SQLite importer, which
	// refuses to create the database.
	_, err = importIsotopes(reg, filepath.Join(tmpDir, "no.sqlite"))
	assert.Error(t, err)
}
