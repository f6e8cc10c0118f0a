// Copyright (C) 2026 Creditor Corp. Group.
// See LICENSE for copying information.

package reverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BoostyLabs/txcore/internal/reverse"
)

func TestHex(t *testing.T) {
	b, err := reverse.Hex("0a0b0c")
	require.NoError(t, err)
	require.Equal(t, []byte{0x0c, 0x0b, 0x0a}, b)
	require.Equal(t, "0a0b0c", reverse.ToHex(b))

	_, err = reverse.Hex("zz")
	require.Error(t, err)
}
