package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "debug", Format: "json", Output: &buf})

	log.With("request_id", "r1").Info("orçamento criado", "budget_id", "b1", "itens", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "orçamento criado", entry["msg"])
	assert.Equal(t, "b1", entry["budget_id"])
	assert.Equal(t, "r1", entry["request_id"])
	assert.Equal(t, float64(3), entry["itens"])
	assert.Equal(t, "info", entry["level"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Options{Level: "warn", Output: &buf})
	log.Debug("não aparece")
	log.Info("também não")
	assert.Empty(t, buf.String())

	log.Warn("aparece", "chave_sem_valor")
	assert.Contains(t, buf.String(), "aparece")
	assert.Contains(t, buf.String(), "sem valor")
}
