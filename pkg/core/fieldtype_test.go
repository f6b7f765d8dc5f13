package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldType_JSON(t *testing.T) {
	data, err := json.Marshal(PrimitiveType(PrimitiveUUID))
	require.NoError(t, err)
	assert.Equal(t, `"uuid"`, string(data))

	data, err = json.Marshal(ReferenceType("User", "mssql"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"User","source":"mssql"}`, string(data))

	var ft FieldType
	require.NoError(t, json.Unmarshal(data, &ft))
	assert.True(t, ft.IsReference())
	assert.Equal(t, "User", ft.String())
}

func TestFieldType_UnmarshalRejectsUnknownPrimitive(t *testing.T) {
	var ft FieldType
	err := json.Unmarshal([]byte(`"decimal"`), &ft)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decimal")

	err = json.Unmarshal([]byte(`{"source":"x"}`), &ft)
	require.Error(t, err)
}

func TestPrimitive_Valid(t *testing.T) {
	for _, p := range Primitives {
		assert.True(t, p.Valid(), "%s should be valid", p)
	}
	assert.False(t, Primitive("ID").Valid())
}
