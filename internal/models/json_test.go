package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONScanWebhookPayload(t *testing.T) {
	payload := []byte(`{"id":"cs_test_123","amount_total":18100}`)

	var fromBytes JSON
	require.NoError(t, fromBytes.Scan(payload))
	assert.Equal(t, "cs_test_123", fromBytes["id"])

	// pgx hands jsonb back as a string in some configurations.
	var fromString JSON
	require.NoError(t, fromString.Scan(string(payload)))
	assert.Equal(t, fromBytes, fromString)
}

func TestJSONNilWritesNull(t *testing.T) {
	var j JSON
	v, err := j.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)
}

func TestStringListRoundTrip(t *testing.T) {
	types := StringList{"universal_credit", "income_support"}
	v, err := types.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, types, scanned)
}

func TestStringListRejectsUnknownSource(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(42))
}
