package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runNFA(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	_, stderr, err = runNFA(t, binaryPath, home, "config", "init")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(home, ".nfa", "config.toml"))
	assert.FileExists(t, filepath.Join(home, ".nfa", "networks.toml"))

	stdout, stderr, err = runNFA(t, binaryPath, home, "network", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "* sapphire")
	assert.Contains(t, stdout, "ethereum")
}

func TestSmokeConnectWithoutWalletFails(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runNFA(t, binaryPath, home, "connect")
	require.Error(t, err)
	assert.Contains(t, stderr, "connect wallet")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "nfa-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/nfa")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build nfa binary: %s", string(output))
	return binaryPath
}

func runNFA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		// nothing listens here
		"NFA_WALLET_ENDPOINT=http://127.0.0.1:1",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
