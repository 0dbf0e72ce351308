package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-mechanics/internal/entities/mechanics"
	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

// reloadDebounce coalesces the burst of events editors emit for one save
const reloadDebounce = 100 * time.Millisecond

// catalogFile is the on-disk layout shared by the JSON and TOML formats
type catalogFile struct {
	Powers     []mechanics.PartDefinition `json:"powers,omitempty" toml:"powers,omitempty"`
	Techniques []mechanics.PartDefinition `json:"techniques,omitempty" toml:"techniques,omitempty"`
	Items      []mechanics.PartDefinition `json:"items,omitempty" toml:"items,omitempty"`
}

func (f catalogFile) byKind() map[mechanics.Kind][]mechanics.PartDefinition {
	out := make(map[mechanics.Kind][]mechanics.PartDefinition)
	if f.Powers != nil {
		out[mechanics.KindPower] = f.Powers
	}
	if f.Techniques != nil {
		out[mechanics.KindTechnique] = f.Techniques
	}
	if f.Items != nil {
		out[mechanics.KindItem] = f.Items
	}
	return out
}

// DecodeFile parses catalog data, choosing TOML or JSON by the file extension
func DecodeFile(path string, data []byte) (map[mechanics.Kind][]mechanics.PartDefinition, error) {
	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", path)
		}
	default:
		return nil, errors.InvalidArgumentf("unsupported catalog file %s: expected .json or .toml", path)
	}

	catalogs := file.byKind()
	for kind, parts := range catalogs {
		prepared, err := prepareParts(kind, parts)
		if err != nil {
			return nil, err
		}
		catalogs[kind] = prepared
	}
	return catalogs, nil
}

// ReadFile reads and decodes a catalog file
func ReadFile(path string) (map[mechanics.Kind][]mechanics.PartDefinition, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied catalog path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return DecodeFile(path, data)
}

// FileRepository serves catalogs from a JSON or TOML file and can follow edits to it
type FileRepository struct {
	path string

	mu       sync.RWMutex
	catalogs map[mechanics.Kind][]mechanics.PartDefinition
}

// NewFile loads a catalog file. Call Watch to keep it in sync with the file.
func NewFile(path string) (*FileRepository, error) {
	catalogs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileRepository{path: path, catalogs: catalogs}, nil
}

// GetParts returns a copy of the loaded catalog
func (r *FileRepository) GetParts(_ context.Context, input GetPartsInput) (*GetPartsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	parts, ok := r.catalogs[input.Kind]
	if !ok {
		return nil, errors.NotFoundf("%s catalog not present in %s", input.Kind, r.path)
	}
	return &GetPartsOutput{Parts: cloneParts(parts)}, nil
}

// Reload re-reads the file. A file that fails to parse leaves the previous catalogs in place.
func (r *FileRepository) Reload() error {
	catalogs, err := ReadFile(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.catalogs = catalogs
	r.mu.Unlock()
	return nil
}

// Watch reloads the catalog whenever the file changes until ctx is cancelled. The parent
// directory is watched so editors that replace the file on save are followed too.
func (r *FileRepository) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(r.path)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", r.path)
	}

	target := filepath.Clean(r.path)
	ticker := time.NewTicker(reloadDebounce)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < reloadDebounce {
				continue
			}
			pending = time.Time{}

			if err := r.Reload(); err != nil {
				slog.Warn("catalog reload failed, keeping previous catalog",
					"path", r.path,
					"error", err)
				continue
			}
			slog.Info("catalog reloaded", "path", r.path)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("catalog watcher error", "path", r.path, "error", err)
		}
	}
}

var _ Repository = (*FileRepository)(nil)
