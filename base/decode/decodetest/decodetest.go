// Package decodetest provides helpers for testing resource constructors.
package decodetest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/gallery/base/decode"
)

// RoundTrip decodes raw with parse, encodes the result and decodes it again.
// Both encodings must match, so every field survives re-serialization.
func RoundTrip[T any](t *testing.T, raw string, parse func(decode.Object) (*T, error)) *T {
	t.Helper()
	req := require.New(t)

	obj, err := decode.ParseObject([]byte(raw))
	req.NoError(err)
	first, err := parse(obj)
	req.NoError(err)

	encoded, err := json.Marshal(first)
	req.NoError(err)
	obj2, err := decode.ParseObject(encoded)
	req.NoError(err)
	second, err := parse(obj2)
	req.NoError(err)

	reencoded, err := json.Marshal(second)
	req.NoError(err)
	req.JSONEq(string(encoded), string(reencoded))
	return second
}

// RequiredFields drops each key of raw in turn and expects parse to fail
func RequiredFields[T any](t *testing.T, raw string, parse func(decode.Object) (*T, error), keys ...string) {
	t.Helper()
	for _, key := range keys {
		obj, err := decode.ParseObject([]byte(raw))
		require.NoError(t, err)
		delete(obj, key)
		_, err = parse(obj)
		require.Errorf(t, err, "missing %s should fail", key)
		require.ErrorIsf(t, err, decode.ErrInvalid, "missing %s", key)
	}
}
