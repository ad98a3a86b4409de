package mocks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mmrzaf/mockgen/internal/domain"
	"gopkg.in/yaml.v3"
)

type Repository interface {
	List() ([]*domain.MockDefinition, error)
	Get(id string) (*domain.MockDefinition, error)
	GetByPath(path string) (*domain.MockDefinition, error)
}

// FileRepository reads mock definitions from yaml or json files in one directory.
type FileRepository struct {
	baseDir string
}

var _ Repository = (*FileRepository)(nil)

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

// List loads every yaml, yml or json file under the base directory,
// including subdirectories, ordered by id.
func (r *FileRepository) List() ([]*domain.MockDefinition, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []*domain.MockDefinition{}, nil
	}

	pattern := filepath.Join(r.baseDir, "**", "*.{yaml,yml,json}")
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	defs := make([]*domain.MockDefinition, 0, len(matches))
	for _, match := range matches {
		def, err := r.load(match)
		if err != nil {
			rel, _ := filepath.Rel(r.baseDir, match)
			return nil, fmt.Errorf("%s: %w", rel, err)
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs, nil
}

func (r *FileRepository) Get(id string) (*domain.MockDefinition, error) {
	defs, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, d := range defs {
		if d.ID == id || d.Name == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("mock not found: %s", id)
}

// GetByPath loads one file. Relative paths resolve against the base
// directory and the result must stay inside it.
func (r *FileRepository) GetByPath(path string) (*domain.MockDefinition, error) {
	resolved, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return r.load(resolved)
}

func (r *FileRepository) resolve(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	target := path
	if !filepath.IsAbs(target) {
		target = filepath.Join(base, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside mocks directory %s", path, r.baseDir)
	}
	return target, nil
}

func (r *FileRepository) load(path string) (*domain.MockDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var def domain.MockDefinition
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &def)
	} else {
		err = yaml.Unmarshal(data, &def)
	}
	if err != nil {
		return nil, err
	}

	if def.ID == "" {
		def.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if def.ContentType == "" {
		def.ContentType = domain.ContentTypeJSON
	}
	if def.Status == 0 {
		def.Status = 200
	}
	return &def, nil
}
