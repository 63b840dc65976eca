package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlowID(t *testing.T) {
	id := NewFlowID()

	assert.False(t, id.IsZero())
	assert.NotEqual(t, id, NewFlowID())
}

func TestNewFlowIDFromString(t *testing.T) {
	id := NewFlowID()

	parsed, err := NewFlowIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))

	_, err = NewFlowIDFromString("")
	assert.Error(t, err)

	_, err = NewFlowIDFromString("not-a-uuid")
	assert.Error(t, err)
}

func TestFlowID_JSONRoundTrip(t *testing.T) {
	id := NewFlowID()

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(data))

	var decoded FlowID
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equals(id))
}
