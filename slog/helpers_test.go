package slog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// conversionIDs returns the conversion attribute of every JSON log line.
func conversionIDs(t *testing.T, logs []byte) []string {
	t.Helper()

	var ids []string
	for _, line := range bytes.Split(bytes.TrimSpace(logs), []byte("\n")) {
		var entry struct {
			Conversion string `json:"conversion"`
		}
		require.NoError(t, json.Unmarshal(line, &entry))
		ids = append(ids, entry.Conversion)
	}
	return ids
}
