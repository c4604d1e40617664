package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/tfconform/tfconform/internal/adapters/inbound/mcp"
)

func TestNewTfconformMCPServer(t *testing.T) {
	s := mcpadapter.NewTfconformMCPServer(".")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewTfconformMCPServer(".")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"tfconform_validate",
		"tfconform_rules",
		"tfconform_report",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
