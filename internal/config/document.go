package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sysdoc/internal/errors"
	"github.com/thoreinstein/sysdoc/pkg/fileutil"
)

// Document is the host config document supplying thresholds to profiles
// that are not hard coded. A nil section means the related checks are not
// configured.
type Document struct {
	CPU         CPUConfig         `json:"cpu" yaml:"cpu" toml:"cpu"`
	Disk        DiskConfig        `json:"disk" yaml:"disk" toml:"disk"`
	Memory      MemoryConfig      `json:"memory" yaml:"memory" toml:"memory"`
	Performance PerformanceConfig `json:"performance" yaml:"performance" toml:"performance"`
}

// CPUConfig holds CPU thresholds.
type CPUConfig struct {
	CoreCount *CoreCountConfig `json:"core_count,omitempty" yaml:"core_count,omitempty" toml:"core_count,omitempty"`
}

// CoreCountConfig is the minimum number of online cores.
type CoreCountConfig struct {
	NumCores int `json:"num_cores" yaml:"num_cores" toml:"num_cores"`
}

// DiskConfig holds filesystem thresholds.
type DiskConfig struct {
	PercentFree []PercentFreeConfig `json:"percent_free,omitempty" yaml:"percent_free,omitempty" toml:"percent_free,omitempty"`
}

// PercentFreeConfig is the minimum free space of one filesystem.
type PercentFreeConfig struct {
	Filesystem string  `json:"filesystem" yaml:"filesystem" toml:"filesystem"`
	Percent    float64 `json:"percent" yaml:"percent" toml:"percent"`
}

// MemoryConfig holds memory thresholds.
type MemoryConfig struct {
	PhysicalSize *PhysicalSizeConfig `json:"physical_size,omitempty" yaml:"physical_size,omitempty" toml:"physical_size,omitempty"`
}

// PhysicalSizeConfig is the expected physical memory in bytes.
type PhysicalSizeConfig struct {
	MemSize   uint64 `json:"mem_size" yaml:"mem_size" toml:"mem_size"`
	Tolerance uint64 `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
}

// PerformanceConfig holds benchmark thresholds.
type PerformanceConfig struct {
	Stream *StreamConfig `json:"stream,omitempty" yaml:"stream,omitempty" toml:"stream,omitempty"`
}

// StreamConfig is the minimum STREAM bandwidth in MB/s.
type StreamConfig struct {
	Triad float64 `json:"triad" yaml:"triad" toml:"triad"`
}

// Format identifies the encoding of a config document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from the file extension.
// Unrecognized extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// LoadDocument reads, decodes and validates the config document at path.
// Every failure is marked as a configuration error.
func LoadDocument(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading config %s", path), errors.ErrConfig)
	}

	doc, err := ParseDocument(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing config %s", path), errors.ErrConfig)
	}

	if errs := Validate(doc); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrapf(joinErrors(errs), "invalid config %s", path), errors.ErrConfig)
	}
	return doc, nil
}

// ParseDocument decodes data in the given format. JSON documents may carry
// comments and trailing commas.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding TOML")
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding JSON")
		}
		dec := json.NewDecoder(bytes.NewReader(std))
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decoding JSON")
		}
	}
	return &doc, nil
}

func joinErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}
