package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-fetch/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// executeCLI runs the root command in-process with fresh flag state and an
// empty RESUME_* environment, returning what it wrote to stdout and stderr.
func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{config.EnvServerURL, config.EnvUsername, config.EnvPassword, config.EnvFormat, config.EnvTimeout} {
		t.Setenv(key, "")
	}

	resetFlags(rootCmd)
	for _, sub := range rootCmd.Commands() {
		resetFlags(sub)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// writeFile writes content to a file under t.TempDir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
