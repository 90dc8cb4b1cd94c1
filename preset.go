package latextable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PresetCodec selects the on-disk encoding of a preset file.
type PresetCodec string

const (
	PresetJSON PresetCodec = "json"
	PresetYAML PresetCodec = "yaml"
)

const presetVersion = "1.0"

// Preset wraps a grid snapshot with catalog metadata.
type Preset struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Version     string   `json:"version" yaml:"version"`
	Table       Snapshot `json:"table" yaml:"table"`
}

// PresetInfo describes a stored preset without decoding its table.
type PresetInfo struct {
	Name        string
	Description string
	Tags        []string
	Version     string
	Path        string
	Size        int64
	Modified    time.Time
}

// PresetStore keeps named presets as individual files in a directory, one
// file per preset, encoded as JSON or YAML by extension.
type PresetStore struct {
	dir string
}

// NewPresetStore opens (creating if needed) a preset directory.
func NewPresetStore(dir string) (*PresetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preset dir: %w", err)
	}
	return &PresetStore{dir: dir}, nil
}

// validPresetName rejects empty names and names that could escape the store
// directory or break on common filesystems.
func validPresetName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, `<>:"/\|?*`)
}

func (ps *PresetStore) path(name string, codec PresetCodec) string {
	return filepath.Join(ps.dir, name+"."+string(codec))
}

// find returns the path and codec of an existing preset file, trying JSON
// first, then YAML.
func (ps *PresetStore) find(name string) (string, PresetCodec, error) {
	for _, codec := range []PresetCodec{PresetJSON, PresetYAML} {
		p := ps.path(name, codec)
		if _, err := os.Stat(p); err == nil {
			return p, codec, nil
		}
	}
	return "", "", fmt.Errorf("preset %q: %w", name, fs.ErrNotExist)
}

// Save stores the grid under name with the given metadata and codec,
// overwriting any existing preset file with the same name and codec.
func (ps *PresetStore) Save(name string, g *Grid, description string, tags []string, codec PresetCodec) error {
	if !validPresetName(name) {
		return fmt.Errorf("invalid preset name %q", name)
	}
	p := Preset{
		Name:        name,
		Description: description,
		Tags:        tags,
		Version:     presetVersion,
		Table:       g.Snapshot(),
	}
	data, err := encodePreset(p, codec)
	if err != nil {
		return err
	}
	return os.WriteFile(ps.path(name, codec), data, 0o644)
}

func encodePreset(p Preset, codec PresetCodec) ([]byte, error) {
	switch codec {
	case PresetJSON:
		return json.MarshalIndent(p, "", "  ")
	case PresetYAML:
		return yaml.Marshal(p)
	}
	return nil, fmt.Errorf("unknown preset codec %q", codec)
}

func decodePreset(data []byte, codec PresetCodec) (Preset, error) {
	var p Preset
	switch codec {
	case PresetJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return Preset{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	case PresetYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Preset{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	default:
		return Preset{}, fmt.Errorf("unknown preset codec %q", codec)
	}
	return p, nil
}

// Load reads the named preset.
func (ps *PresetStore) Load(name string) (*Preset, error) {
	path, codec, err := ps.find(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := decodePreset(data, codec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadGrid reads the named preset and reconstructs its grid.
func (ps *PresetStore) LoadGrid(name string) (*Grid, error) {
	p, err := ps.Load(name)
	if err != nil {
		return nil, err
	}
	return FromSnapshot(p.Table)
}

// Info describes a stored preset without materializing its grid.
func (ps *PresetStore) Info(name string) (PresetInfo, error) {
	path, codec, err := ps.find(name)
	if err != nil {
		return PresetInfo{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PresetInfo{}, err
	}
	p, err := decodePreset(data, codec)
	if err != nil {
		return PresetInfo{}, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return PresetInfo{}, err
	}
	info := PresetInfo{
		Name:        p.Name,
		Description: p.Description,
		Tags:        p.Tags,
		Version:     p.Version,
		Path:        path,
		Size:        st.Size(),
		Modified:    st.ModTime(),
	}
	if info.Name == "" {
		info.Name = name
	}
	return info, nil
}

// List returns all readable presets, newest first. Unreadable or malformed
// files are skipped.
func (ps *PresetStore) List() []PresetInfo {
	var infos []PresetInfo
	seen := make(map[string]bool)
	for _, codec := range []PresetCodec{PresetJSON, PresetYAML} {
		matches, _ := filepath.Glob(filepath.Join(ps.dir, "*."+string(codec)))
		for _, path := range matches {
			name := strings.TrimSuffix(filepath.Base(path), "."+string(codec))
			if seen[name] {
				continue
			}
			info, err := ps.Info(name)
			if err != nil {
				continue
			}
			seen[name] = true
			infos = append(infos, info)
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Modified.After(infos[j].Modified) })
	return infos
}

// Delete removes the named preset.
func (ps *PresetStore) Delete(name string) error {
	path, _, err := ps.find(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Rename re-stores the preset under a new name and removes the old file.
// It fails if the target name is invalid or already taken.
func (ps *PresetStore) Rename(oldName, newName string) error {
	if !validPresetName(newName) {
		return fmt.Errorf("invalid preset name %q", newName)
	}
	if _, _, err := ps.find(newName); err == nil {
		return fmt.Errorf("preset %q already exists", newName)
	}
	path, codec, err := ps.find(oldName)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	p, err := decodePreset(data, codec)
	if err != nil {
		return err
	}
	p.Name = newName
	out, err := encodePreset(p, codec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(ps.path(newName, codec), out, 0o644); err != nil {
		return err
	}
	return os.Remove(path)
}

// Search returns presets whose name, description, or any tag contains the
// query, case-insensitively.
func (ps *PresetStore) Search(query string) []PresetInfo {
	query = strings.ToLower(query)
	var out []PresetInfo
	for _, info := range ps.List() {
		if presetMatches(info, query) {
			out = append(out, info)
		}
	}
	return out
}

func presetMatches(info PresetInfo, query string) bool {
	if strings.Contains(strings.ToLower(info.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(info.Description), query) {
		return true
	}
	for _, tag := range info.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// IsNotExist reports whether err means a preset was not found.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
