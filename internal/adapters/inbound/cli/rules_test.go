package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfconform/tfconform/internal/adapters/inbound/cli"
)

func TestRulesCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rules"})
	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "magic-number")
	assert.Contains(t, output, "missing-sensitive")
	assert.Contains(t, output, "ERROR")
	assert.Contains(t, output, "WARNING")
}

func TestRulesCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rules", "--json"})
	require.NoError(t, cmd.Execute())

	var result []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result, 12)
	assert.Contains(t, result[0], "id")
	assert.Contains(t, result[0], "severity")
	assert.Contains(t, result[0], "description")
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "tfconform")
}
