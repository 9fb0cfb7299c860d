package mweb_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/mweb"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	err := os.WriteFile(path, []byte("address: 127.0.0.1:9000\nverbose: true\n"), 0644)
	assert.Nil(t, err)

	opts, err := mweb.LoadOptions(path)
	assert.Nil(t, err)
	assert.Equal(t, opts.Address, "127.0.0.1:9000")
	assert.True(t, opts.Verbose)
	assert.False(t, opts.Debug)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := mweb.LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing options file")
	}
}

func TestLoadOptionsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := os.WriteFile(path, []byte("address: [unclosed"), 0644)
	assert.Nil(t, err)

	_, err = mweb.LoadOptions(path)
	if err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
