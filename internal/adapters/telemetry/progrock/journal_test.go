package progrock_test

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/bytesum/internal/adapters/telemetry/progrock"
	"go.trai.ch/bytesum/internal/core/domain"
	"google.golang.org/protobuf/encoding/protojson"
)

func TestOpener_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scan.jsonl")

	journal, err := progrock.Opener{}.Open(path)
	require.NoError(t, err)

	journal.OnEvent(domain.TotalCountKnown{Root: "/data", Count: 2})
	journal.OnEvent(domain.FileProcessed{
		Outcome: domain.NewSuccess(domain.ChecksumResult{Path: "/data/a", Checksum: 1}, 1),
	})
	journal.OnEvent(domain.FileProcessed{
		Outcome: domain.NewFailure("/data/b", errors.New("permission denied"), 2),
	})
	require.NoError(t, journal.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	names := make(map[string]bool)
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		var update vprogrock.StatusUpdate
		require.NoError(t, protojson.Unmarshal(scanner.Bytes(), &update))
		for _, v := range update.Vertexes {
			names[v.Name] = true
		}
	}
	require.NoError(t, scanner.Err())

	assert.Positive(t, lines)
	assert.True(t, names["scan /data"])
	assert.True(t, names["/data/a"])
	assert.True(t, names["/data/b"])
}

func TestOpener_Open_Error(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o600))

	_, err := progrock.Opener{}.Open(filepath.Join(parent, "scan.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create journal directory")
}
