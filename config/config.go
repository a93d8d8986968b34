package config

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

type (
	NET struct {
		// Addr is the address to listen at. An empty string means every interface.
		Addr string `test:"nullable"`
		Port uint16
		// Backlog is the length of the pending connections queue. Go's listener takes
		// it from the kernel (somaxconn), so it's informational only.
		Backlog int
		// ReadBufferSize is the capacity of the per-connection read buffer. The whole
		// request is expected to fit into it minus one byte, as only a single read
		// is ever made. It also sizes the path decoding scratch buffer.
		ReadBufferSize int
		// WriteBufferSize is the capacity of the per-connection write buffer. Response
		// headers must fit into it, otherwise the connection is aborted; files are
		// streamed through it in chunks of at most this size.
		WriteBufferSize int
	}

	Root struct {
		// Dir is the document root. Requested paths are appended to it verbatim
		// after decoding.
		Dir string
		// DefaultFile is appended to paths ending with a slash.
		DefaultFile string
	}

	Log struct {
		// Level is one of none, panic, error, info or debug.
		Level string
	}
)

// Config holds everything the server needs to bootstrap. Always start from
// Default() and modify the fields you need.
type Config struct {
	NET  NET
	Root Root
	Log  Log
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Port:            80,
			Backlog:         1024,
			ReadBufferSize:  8 * 1024,
			WriteBufferSize: 8 * 1024,
		},
		Root: Root{
			Dir:         ".",
			DefaultFile: "index.html",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a JSON config file and lays it over the defaults, so the file may
// contain only the fields it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err = json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the server can't work with.
func (c *Config) Validate() error {
	switch {
	case c.NET.ReadBufferSize < 2:
		return fmt.Errorf("config: read buffer size must be at least 2, got %d", c.NET.ReadBufferSize)
	case c.NET.WriteBufferSize < 1:
		return fmt.Errorf("config: write buffer size must be positive, got %d", c.NET.WriteBufferSize)
	case len(c.Root.Dir) == 0:
		return fmt.Errorf("config: document root must not be empty")
	case len(c.Root.DefaultFile) == 0:
		return fmt.Errorf("config: default file must not be empty")
	}

	return nil
}

// Address returns the address to listen at in the host:port form.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.NET.Addr, c.NET.Port)
}
