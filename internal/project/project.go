// Package project handles Mix project directories: the mix.conf file,
// scaffolding new projects and discovering the sources to build.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/guregu/null.v3"
)

var (
	ErrNoProject     = errors.New("project directory not found")
	ErrNoEntry       = errors.New("entry file not found")
	ErrProjectExists = errors.New("directory already exists")
)

const mainTemplate = `func main() {
    std::println("Hello, Mix!");
}
`

// Project is an opened project directory.
type Project struct {
	Dir    string
	Config Config

	fs afero.Fs
}

// Open loads the project in dir. layers are applied over mix.conf, see Load.
func Open(fs afero.Fs, dir string, layers ...Config) (*Project, error) {
	if ok, _ := afero.DirExists(fs, dir); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProject, dir)
	}

	conf, err := Load(fs, dir, layers...)
	if err != nil {
		return nil, err
	}

	p := &Project{Dir: dir, Config: conf, fs: fs}
	if ok, _ := afero.Exists(fs, p.EntryPath()); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEntry, p.EntryPath())
	}
	return p, nil
}

// Create scaffolds a new project in dir, named after its last element, and
// opens it. dir must not exist yet.
func Create(fs afero.Fs, dir string) (*Project, error) {
	if ok, _ := afero.Exists(fs, dir); ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, dir)
	}

	entry := filepath.Join(dir, filepath.FromSlash(DefaultEntry))
	if err := fs.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		return nil, err
	}

	conf := Config{
		Name:     null.StringFrom(filepath.Base(dir)),
		Version:  null.StringFrom("1.0.0"),
		Author:   null.StringFrom("..."),
		Packages: []string{},
		Entry:    null.StringFrom(DefaultEntry),
	}
	if err := WriteConfig(fs, dir, conf); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(fs, entry, []byte(mainTemplate), 0o644); err != nil {
		return nil, err
	}

	return Open(fs, dir)
}

// FS returns the filesystem the project lives on.
func (p *Project) FS() afero.Fs {
	return p.fs
}

// EntryPath returns the entry file path.
func (p *Project) EntryPath() string {
	return filepath.Join(p.Dir, filepath.FromSlash(p.Config.Entry.String))
}

// Sources returns the entry file followed by every .mx file found under the
// configured source directories, in lexical order and without duplicates.
func (p *Project) Sources() ([]string, error) {
	entry := p.EntryPath()
	files := []string{entry}
	seen := map[string]bool{filepath.Clean(entry): true}

	for _, root := range p.Config.Sources {
		dir := filepath.Join(p.Dir, filepath.FromSlash(root))

		var found []string
		err := afero.Walk(p.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != dir && strings.HasPrefix(info.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == SourceExt {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("source directory %s: %w", root, err)
		}

		sort.Strings(found)
		for _, f := range found {
			if clean := filepath.Clean(f); !seen[clean] {
				seen[clean] = true
				files = append(files, f)
			}
		}
	}

	return files, nil
}
