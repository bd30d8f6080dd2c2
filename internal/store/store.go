// Package store persists point sets as YAML documents, one file per key.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-dsp-viz/dsp/core"
	"github.com/cwbudde/algo-dsp-viz/dsp/signal"
	"gopkg.in/yaml.v3"
)

const ext = ".yaml"

// ErrInvalidKey is returned for keys that are empty or contain path elements.
var ErrInvalidKey = errors.New("store: invalid key")

// Document is the on-disk form of a signal. Missing precisions fall back to
// the core defaults.
type Document struct {
	XPrecision *int           `yaml:"x_precision,omitempty"`
	YPrecision *int           `yaml:"y_precision,omitempty"`
	TimeOffset float64        `yaml:"time_offset,omitempty"`
	Points     []signal.Point `yaml:"points"`
}

// FromSignal captures the persistent state of sig.
func FromSignal(sig *signal.Signal) Document {
	xp, yp := sig.Precision()
	return Document{
		XPrecision: &xp,
		YPrecision: &yp,
		TimeOffset: sig.TimeOffset(),
		Points:     sig.Values(),
	}
}

// Signal rebuilds a signal from the document.
func (d Document) Signal() *signal.Signal {
	var opts []core.Option
	if d.XPrecision != nil {
		opts = append(opts, core.WithXPrecision(*d.XPrecision))
	}
	if d.YPrecision != nil {
		opts = append(opts, core.WithYPrecision(*d.YPrecision))
	}

	sig := signal.FromPoints(d.Points, opts...)
	sig.SetTimeOffset(d.TimeOffset)
	return sig
}

// Encode renders sig as YAML.
func Encode(sig *signal.Signal) ([]byte, error) {
	data, err := yaml.Marshal(FromSignal(sig))
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}
	return data, nil
}

// Decode parses a YAML document into a signal.
func Decode(data []byte) (*signal.Signal, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	return doc.Signal(), nil
}

// Storage keeps documents under a root directory.
type Storage struct {
	root string
}

// New returns a storage rooted at root. The directory is created on first save.
func New(root string) *Storage {
	return &Storage{root: root}
}

func (stg *Storage) fileNameByKey(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(stg.root, key+ext), nil
}

// Load reads the signal stored under key.
func (stg *Storage) Load(key string) (*signal.Signal, error) {
	name, err := stg.fileNameByKey(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", key, err)
	}
	return Decode(data)
}

// Save writes sig under key, replacing any previous document.
func (stg *Storage) Save(key string, sig *signal.Signal) error {
	name, err := stg.fileNameByKey(key)
	if err != nil {
		return err
	}

	data, err := Encode(sig)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(stg.root, 0o700); err != nil {
		return fmt.Errorf("store: save %q: %w", key, err)
	}
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return fmt.Errorf("store: save %q: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Missing keys are not an error.
func (stg *Storage) Delete(key string) error {
	name, err := stg.fileNameByKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in sorted order. A missing root yields no keys.
func (stg *Storage) Keys() ([]string, error) {
	entries, err := os.ReadDir(stg.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(keys)
	return keys, nil
}
