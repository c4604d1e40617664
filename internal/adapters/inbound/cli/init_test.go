package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfconform/tfconform/internal/adapters/inbound/cli"
)

func TestInitCommand_CreatesProject(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", "--name", "demo", "--output-dir", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Created project")
	assert.Contains(t, buf.String(), "terraform/versions.tf")

	_, err := os.Stat(filepath.Join(dir, "demo", "terraform", "variables.tf"))
	assert.NoError(t, err)
}

func TestInitCommand_ScaffoldValidatesClean(t *testing.T) {
	dir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", "--name", "demo", "--output-dir", dir})
	require.NoError(t, cmd.Execute())

	cmd = cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "--path", filepath.Join(dir, "demo", "terraform")})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "PASSED")
}

func TestInitCommand_RequiresName(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", "--output-dir", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestInitCommand_RejectsUnknownCloud(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"init", "--name", "demo", "--cloud", "oracle", "--output-dir", t.TempDir()})
	assert.Error(t, cmd.Execute())
}
