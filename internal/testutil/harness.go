package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/cfgdot/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	// OutputPrefix is the prefix every artifact of the run was written with.
	OutputPrefix string
}

// WriteFiles writes files (relative name to content) below dir and returns
// dir.
func WriteFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// RunApp writes files into a temporary directory and runs the app on input,
// one of the written names. Artifacts go to "<tmp>/out/". configure may
// adjust the configuration before validation.
func RunApp(t *testing.T, files map[string]string, input string, configure func(*app.Config)) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, input, configure)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, input string, configure func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := WriteFiles(t, t.TempDir(), files)
	prefix := filepath.Join(tmpDir, "out") + string(filepath.Separator)

	cfg := app.Config{
		InputPath:    filepath.Join(tmpDir, input),
		OutputPrefix: prefix,
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if configure != nil {
		configure(&cfg)
	}

	logBuffer := &SafeBuffer{}
	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err, OutputPrefix: prefix}
	}

	testApp := app.NewApp(logBuffer, validated)
	runErr := testApp.Run(ctx)

	if os.Getenv("CFGDOT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput:    logBuffer.String(),
		Err:          runErr,
		App:          testApp,
		OutputPrefix: prefix,
	}
}
