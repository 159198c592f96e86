package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "create"}, names)

	create, _, err := cmd.Find([]string{"create"})
	require.NoError(t, err)
	assert.NotNil(t, create.Flags().Lookup("name"))

	down, _, err := cmd.Find([]string{"down"})
	require.NoError(t, err)
	assert.Equal(t, "1", down.Flags().Lookup("steps").DefValue)
}

func TestRunDown_RejectsNonPositiveSteps(t *testing.T) {
	old := steps
	t.Cleanup(func() { steps = old })

	steps = 0
	err := runDown(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be at least 1")
}
