// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package renderer

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobuffalo/packd"

	"github.com/devblok/echo/utility/kar"
)

// ErrShaderNotFound is returned by a ShaderStore that does not hold the requested name.
var ErrShaderNotFound = errors.New("shader not found")

// ShaderSuffix is the extension of compiled shader objects
const ShaderSuffix = ".cso"

// ShaderNames are the names of the compiled vertex and pixel programs.
type ShaderNames struct {
	Vertex string
	Pixel  string
}

// DefaultShaderNames returns the program names, debug builds use the _d variants.
func DefaultShaderNames(debug bool) ShaderNames {
	suffix := ""
	if debug {
		suffix = "_d"
	}
	return ShaderNames{
		Vertex: "SimpleVertexShader" + suffix + ShaderSuffix,
		Pixel:  "SimplePixelShader" + suffix + ShaderSuffix,
	}
}

// ShaderStore provides compiled shader bytecode by name.
type ShaderStore interface {

	// ReadAll returns the full bytecode of the named shader,
	// or an error wrapping ErrShaderNotFound.
	ReadAll(name string) ([]byte, error)
}

func notFound(name string) error {
	return &os.PathError{Op: "shader", Path: name, Err: ErrShaderNotFound}
}

// DirectoryStore reads shaders from files in a directory.
type DirectoryStore string

// ReadAll implements ShaderStore
func (d DirectoryStore) ReadAll(name string) ([]byte, error) {
	data, err := ioutil.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
	if os.IsNotExist(err) {
		return nil, notFound(name)
	}
	return data, err
}

// List returns the names of all compiled shaders under the directory,
// relative to it and slash separated.
func (d DirectoryStore) List() ([]string, error) {
	var names []string
	if err := filepath.Walk(string(d), func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if f.IsDir() || !strings.HasSuffix(f.Name(), ShaderSuffix) {
			return nil
		}
		rel, err := filepath.Rel(string(d), path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	}); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// ArchiveStore reads shaders from a kar archive.
type ArchiveStore struct {
	archive *kar.Archive
}

// NewArchiveStore creates a store backed by an open archive.
func NewArchiveStore(archive *kar.Archive) *ArchiveStore {
	return &ArchiveStore{archive: archive}
}

// OpenArchiveStore memory maps the archive at path.
func OpenArchiveStore(path string) (*ArchiveStore, error) {
	archive, err := kar.OpenFile(path)
	if err != nil {
		return nil, errors.New("kar.OpenFile(): " + err.Error())
	}
	return NewArchiveStore(archive), nil
}

// ReadAll implements ShaderStore
func (a *ArchiveStore) ReadAll(name string) ([]byte, error) {
	data, err := a.archive.ReadAll(name)
	if errors.Is(err, kar.ErrFileNotFound) {
		return nil, notFound(name)
	}
	return data, err
}

// Close releases the underlying archive.
func (a *ArchiveStore) Close() error {
	return a.archive.Close()
}

// BoxStore reads shaders from a packd.Finder, usually a packr.Box
// embedding the compiled shaders into the executable.
type BoxStore struct {
	finder packd.Finder
}

// NewBoxStore creates a store backed by finder.
func NewBoxStore(finder packd.Finder) *BoxStore {
	return &BoxStore{finder: finder}
}

// ReadAll implements ShaderStore
func (b *BoxStore) ReadAll(name string) ([]byte, error) {
	data, err := b.finder.Find(name)
	if err != nil {
		// finders don't tell a missing file apart from other failures
		return nil, notFound(name)
	}
	return data, nil
}

// StoreChain searches stores in order, the first one that has the shader wins.
type StoreChain []ShaderStore

// ReadAll implements ShaderStore
func (c StoreChain) ReadAll(name string) ([]byte, error) {
	for _, store := range c {
		data, err := store.ReadAll(name)
		if errors.Is(err, ErrShaderNotFound) {
			continue
		}
		return data, err
	}
	return nil, notFound(name)
}
