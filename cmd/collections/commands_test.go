package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/mholzen/collections/pkg/stack"
)

func runCommand(t *testing.T, cmd *cli.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.Writer = &out
	err := cmd.Run(context.Background(), args)
	return out.String(), err
}

func TestEvalCommand_PrintsResult(t *testing.T) {
	output, err := runCommand(t, getEvalCommand(), "eval", "3 4 + 2 *")

	require.NoError(t, err)
	assert.Equal(t, "14\n", output)
}

func TestEvalCommand_RequiresExpression(t *testing.T) {
	_, err := runCommand(t, getEvalCommand(), "eval")

	assert.ErrorContains(t, err, "expression is required")
}

func TestEvalCommand_MaxDepth(t *testing.T) {
	_, err := runCommand(t, getEvalCommand(), "eval", "--max-depth=2", "1 2 3 + +")

	assert.ErrorIs(t, err, stack.ErrCapacityExceeded)
}

func TestReverseCommand_ReversesTokens(t *testing.T) {
	output, err := runCommand(t, getReverseCommand(), "reverse", "one two three")

	require.NoError(t, err)
	assert.Equal(t, "three two one\n", output)
}

func TestReverseCommand_ReadsStdin(t *testing.T) {
	cmd := getReverseCommand()
	cmd.Reader = strings.NewReader("a b c")

	output, err := runCommand(t, cmd, "reverse")

	require.NoError(t, err)
	assert.Equal(t, "c b a\n", output)
}

func TestReverseCommand_AppliesTransform(t *testing.T) {
	output, err := runCommand(t, getReverseCommand(), "reverse", "--transform=uppercase", "one two")

	require.NoError(t, err)
	assert.Equal(t, "TWO ONE\n", output)
}

func TestReverseCommand_UnknownTransform(t *testing.T) {
	_, err := runCommand(t, getReverseCommand(), "reverse", "--transform=rot13", "one")

	assert.ErrorContains(t, err, "unknown transformer")
}

func TestReverseCommand_CapacityExceeded(t *testing.T) {
	_, err := runCommand(t, getReverseCommand(), "reverse", "--capacity=2", "a b c")

	assert.ErrorIs(t, err, stack.ErrCapacityExceeded)
}

func TestTransformsCommand_ListsBuiltins(t *testing.T) {
	output, err := runCommand(t, getTransformsCommand(), "transforms")

	require.NoError(t, err)
	assert.Contains(t, output, "lowercase")
	assert.Contains(t, output, "title")
}

func TestReverseTokens_EmptyInput(t *testing.T) {
	reversed, err := reverseTokens("   ", 0, nil)

	require.NoError(t, err)
	assert.Empty(t, reversed)
}
