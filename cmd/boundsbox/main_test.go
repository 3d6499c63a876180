package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/boundsbox/cage"
)

func TestParseHandle(t *testing.T) {
	id, err := parseHandle("corner:7")
	require.NoError(t, err)
	assert.Equal(t, cage.CornerHandle(7), id)

	id, err = parseHandle("Edge:11")
	require.NoError(t, err)
	assert.Equal(t, cage.EdgeHandle(11), id)

	for _, bad := range []string{"corner", "corner:8", "edge:-1", "face:1", "edge:x"} {
		_, err := parseHandle(bad)
		assert.Error(t, err, bad)
	}
}
