// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prefrank/rank"
)

// Format identifies a round encoding.
type Format int

const (
	// JSON is the goccy/go-json encoding.
	JSON Format = iota
	// YAML is the yaml.v3 encoding.
	YAML
)

var (
	// ErrUnknownFormat is returned for file extensions other than .json/.yaml/.yml.
	ErrUnknownFormat = errors.New("dataset: unknown file format")

	// ErrEmptyRound is returned when a round file lists no items.
	ErrEmptyRound = errors.New("dataset: round has no items")

	// ErrTrailingData is returned when a round file holds more than one document.
	ErrTrailingData = errors.New("dataset: trailing data after round")
)

// Round is one ranking round: the item set and the judgments collected for it.
type Round struct {
	Items       []string          `json:"items" yaml:"items"`
	Preferences []rank.Preference `json:"preferences" yaml:"preferences"`
}

// FormatFor maps a file path to its Format by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads a round from path.
func Load(path string) (*Round, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return r, nil
}

// Decode reads a round from r in the given format.
// Unknown keys and anything after the first document are rejected.
func Decode(r io.Reader, format Format) (*Round, error) {
	var round Round
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&round); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if dec.More() {
			return nil, fmt.Errorf("decode json: %w", ErrTrailingData)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(&round)
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRound
		}
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		var extra yaml.Node
		if err = dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", ErrTrailingData)
		}
	default:
		return nil, ErrUnknownFormat
	}
	if len(round.Items) == 0 {
		return nil, ErrEmptyRound
	}

	return &round, nil
}

// Engine builds a rank.Engine for the round and absorbs all its judgments
// as a single batch.
func (r *Round) Engine(opts ...rank.Option) (*rank.Engine, error) {
	eng, err := rank.New(r.Items, opts...)
	if err != nil {
		return nil, err
	}
	if err = eng.AddPreferences(r.Preferences); err != nil {
		return nil, err
	}

	return eng, nil
}
