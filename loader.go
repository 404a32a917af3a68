package localize

import (
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFS reads a single translation table from fsys, picking the decoder by
// file extension: .json documents go through the full shape handling of
// Decode, .yaml/.yml accept a flat string map or a list of lowercase
// key/value pairs, and .toml accepts a flat string table. Every format folds
// through the same key normalization.
//
// Typical use is an embedded table directory:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	loc, err := localize.LoadFS(translationsFS, "translations/en.json")
func LoadFS(fsys fs.FS, name string) (Localization, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Localization{}, fmt.Errorf("reading %q: %w", name, err)
	}
	entries, err := decodeTable(name, data)
	if err != nil {
		return Localization{}, err
	}
	return Localization{entries: entries}, nil
}

// LoadDirFS walks dir inside fsys and loads every table file it finds, keyed
// by file stem: "en.json" becomes the "en" table. Files with extensions no
// decoder handles are skipped. Files sharing a stem fold into one table in
// walk order, later entries overwriting earlier ones per normalized key.
func LoadDirFS(fsys fs.FS, dir string) (map[string]Localization, error) {
	merged := make(map[string]map[string]string)

	err := fs.WalkDir(fsys, dir, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isTableFile(filePath) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		entries, err := decodeTable(filePath, data)
		if err != nil {
			return err
		}

		stem := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		if existing, ok := merged[stem]; ok {
			maps.Copy(existing, entries)
		} else {
			merged[stem] = entries
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make(map[string]Localization, len(merged))
	for stem, entries := range merged {
		tables[stem] = Localization{entries: entries}
	}
	return tables, nil
}

// decodeTable dispatches on file extension and returns folded entries.
func decodeTable(name string, data []byte) (map[string]string, error) {
	var entries map[string]string
	var err error
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		entries, err = decodeEntries(data)
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	case ".toml":
		entries, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFile, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
	}
	return entries, nil
}

func isTableFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

// decodeYAML accepts a flat string map, or the list form mirroring the JSON
// pair shape with lowercase member names.
func decodeYAML(data []byte) (map[string]string, error) {
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err == nil {
		return foldMap(table), nil
	}

	var pairs []struct {
		Key   string `yaml:"key"`
		Value string `yaml:"value"`
	}
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	entries := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		entries[upperKey(pair.Key)] = pair.Value
	}
	return entries, nil
}

func decodeTOML(data []byte) (map[string]string, error) {
	var table map[string]string
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return foldMap(table), nil
}
