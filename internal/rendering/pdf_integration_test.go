package rendering

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set CHROME_PATH to a Chrome or Chromium binary to run.
func TestIntegration_ChromePDFRenderer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		t.Skip("CHROME_PATH not set, skipping integration test")
	}

	pdf, err := NewChromePDFRenderer(chromePath).Render(context.Background(), Compose(janeDoe(), modern(t)))
	require.NoError(t, err)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")
}
