package cdt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retroio/amstrad/cdt"
	"retroio/storage"
	"retroio/waveform"
)

func TestNewFixesPlatformToAmstradCPC(t *testing.T) {
	header := []byte{'Z', 'X', 'T', 'a', 'p', 'e', '!', 0x1a, 1, 20}
	r := storage.NewReader(bytes.NewReader(header))

	tzxFile := cdt.New(r)
	require.NoError(t, tzxFile.Read())
	assert.Equal(t, waveform.AmstradCPC, tzxFile.Platform)
}
