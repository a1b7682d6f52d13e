package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moviegenre/internal/model"
	"moviegenre/internal/testsupport"
)

const (
	toyStoryDescription = "Movie made in 1995 by the Pixar studios about the life of toys"
	avatarDescription   = "Humans arrive on a beatiful planet and meet their mysterious blue inhabitants"
)

type cliTestEnv struct {
	workDir    string
	homeDir    string
	modelPath  string
	configPath string
}

// setupCLITestEnv isolates HOME and the working directory and writes the
// sample artifact at the default model path.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	workDir := filepath.Join(base, "work")
	for _, dir := range []string{homeDir, workDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("MOVIEGENRE_MODEL_PATH", "")
	t.Setenv("MOVIEGENRE_LOG_LEVEL", "")
	t.Chdir(workDir)

	return &cliTestEnv{
		workDir:   workDir,
		homeDir:   homeDir,
		modelPath: testsupport.WriteArtifact(t, workDir, model.DefaultPath, nil),
	}
}

// enableHistory writes a config file turning the journal on and returns its path.
func (env *cliTestEnv) enableHistory(t *testing.T) string {
	t.Helper()
	content := fmt.Sprintf("[history]\nenabled = true\npath = %q\nlimit = 10\n",
		filepath.Join(env.homeDir, "history.db"))
	env.configPath = testsupport.WriteRaw(t, env.workDir, "moviegenre.toml", content)
	return env.configPath
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
