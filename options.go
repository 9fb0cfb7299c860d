package mweb

import (
	"os"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// ServerOptions configures a server. The zero value is usable:
// the address falls back to consts.DefaultAddress.
type ServerOptions struct {
	// Address is the host:port the server binds to
	Address string `yaml:"address"`
	// Verbose enables startup messages
	Verbose bool `yaml:"verbose"`
	// Debug enables per-request dumps on the connection loop
	Debug bool `yaml:"debug"`

	// ReadyChan, when set, receives a signal as the server enters its
	// listen loop. It should be buffered (cap 1 is enough) or the server
	// may hang.
	ReadyChan chan struct{} `yaml:"-"`
}

// LoadOptions reads server options from a YAML file, so deployments can
// change the bind address without recompiling.
//
//	address: 127.0.0.1:8000
//	verbose: true
func LoadOptions(path string) (ServerOptions, error) {
	var opts ServerOptions

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, serr.Wrap(err, "unable to read server options file", "path", path)
	}

	if err = yaml.Unmarshal(data, &opts); err != nil {
		return opts, serr.Wrap(err, "unable to parse server options file", "path", path)
	}

	return opts, nil
}
