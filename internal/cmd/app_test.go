package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

func TestOptions_GraphIsComplete(t *testing.T) {
	t.Run("server", func(t *testing.T) {
		require.NoError(t, fx.ValidateApp(serverOptions()))
	})

	t.Run("cli", func(t *testing.T) {
		require.NoError(t, fx.ValidateApp(cliOptions()))
	})
}

func TestHashPasswordCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "argument", args: []string{"hash-password", "--cost", "4", "rahasia"}},
		{name: "stdin", args: []string{"hash-password", "--cost", "4"}, stdin: "rahasia\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetIn(strings.NewReader(tt.stdin))
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			require.NoError(t, rootCmd.Execute())

			hash := strings.TrimSpace(out.String())
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("rahasia")))
			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, 4, cost)
		})
	}
}

func TestRestoreCommandRequiresSource(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"restore"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "in")
}
