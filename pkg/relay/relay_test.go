package relay_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/materials-ledger/pkg/relay"
)

func TestToGlobalID_FormatoBase64(t *testing.T) {
	id := relay.ToGlobalID("Client", 42)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("Client:42")), id)

	typeName, dbID, err := relay.FromGlobalID(id)
	require.NoError(t, err)
	assert.Equal(t, "Client", typeName)
	assert.Equal(t, int64(42), dbID)
}

func TestFromGlobalID_Invalidos(t *testing.T) {
	inputs := []string{
		"no-es-base64!!",
		base64.StdEncoding.EncodeToString([]byte("sinseparador")),
		base64.StdEncoding.EncodeToString([]byte("Client:abc")),
		base64.StdEncoding.EncodeToString([]byte(":7")),
		base64.StdEncoding.EncodeToString([]byte("Client:-1")),
	}
	for _, in := range inputs {
		_, _, err := relay.FromGlobalID(in)
		assert.ErrorIs(t, err, relay.ErrMalformedID, "input %q", in)
	}
}

func TestResolveID(t *testing.T) {
	id, err := relay.ResolveID("Supplier", "12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	id, err = relay.ResolveID("Supplier", relay.ToGlobalID("Supplier", 9))
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)

	_, err = relay.ResolveID("Supplier", relay.ToGlobalID("Client", 9))
	assert.ErrorIs(t, err, relay.ErrMalformedID, "un ID de otro tipo no debe aceptarse")

	_, err = relay.ResolveID("Supplier", "0")
	assert.ErrorIs(t, err, relay.ErrMalformedID)
}

func TestCursor(t *testing.T) {
	c := relay.EncodeCursor(15)
	id, err := relay.DecodeCursor(c)
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	_, err = relay.DecodeCursor(relay.ToGlobalID("Client", 15))
	assert.Error(t, err, "un ID global no es un cursor")
	_, err = relay.DecodeCursor("%%%")
	assert.Error(t, err)
}
