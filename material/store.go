package material

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// DefaultRoot is the data root used when none is configured.
const DefaultRoot = "data"

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithRoot reads parameter files from the directory root.
func WithRoot(root string) StoreOption {
	return func(s *Store) {
		if root != "" {
			s.fsys = os.DirFS(root)
			s.root = root
		}
	}
}

// WithFS reads parameter files from fsys.
func WithFS(fsys fs.FS) StoreOption {
	return func(s *Store) {
		if fsys != nil {
			s.fsys = fsys
			s.root = "<fs>"
		}
	}
}

// WithoutBuiltin disables the embedded fallback table.
func WithoutBuiltin() StoreOption {
	return func(s *Store) { s.builtin = nil }
}

// WithLogger sets the logger used to report loads. Default: discard.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

type cacheKey struct {
	name   string
	system string
}

func (k cacheKey) String() string { return k.name + "/" + k.system }

// Store resolves and caches materials. The zero value is not usable; call NewStore.
type Store struct {
	root    string
	fsys    fs.FS
	builtin fs.FS
	log     *slog.Logger

	mu    sync.RWMutex
	cache map[cacheKey]*Material
	group singleflight.Group
}

// NewStore returns a Store rooted at DefaultRoot with the builtin fallback.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		root:    DefaultRoot,
		fsys:    os.DirFS(DefaultRoot),
		builtin: Builtin(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:   make(map[cacheKey]*Material),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Lookup returns the material name (case-insensitive) with the optional
// system overlay applied. Results are cached per (name, system).
//
// Errors:
//   - ErrUnknownMaterial  name is not one of Supported().
//   - ErrUnknownSystem    no overlay file for system, or system is not a bare name.
//   - ErrMalformedData    a file could not be decoded.
//   - ErrInvalidParameter a merged parameter is out of range.
func (s *Store) Lookup(name, system string) (*Material, error) {
	k := cacheKey{
		name:   strings.ToLower(strings.TrimSpace(name)),
		system: strings.ToLower(strings.TrimSpace(system)),
	}
	if !supported(k.name) {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMaterial)
	}
	if k.system != "" && !bareName(k.system) {
		return nil, fmt.Errorf("%q: %w", system, ErrUnknownSystem)
	}

	if m, ok := s.cached(k); ok {
		return m, nil
	}
	v, err, _ := s.group.Do(k.String(), func() (any, error) {
		if m, ok := s.cached(k); ok {
			return m, nil
		}
		m, err := s.load(k)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[k] = m
		s.mu.Unlock()

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Material), nil
}

// MustLookup is Lookup that panics on error, for tests and examples.
func (s *Store) MustLookup(name, system string) *Material {
	m, err := s.Lookup(name, system)
	if err != nil {
		panic(err)
	}

	return m
}

func (s *Store) cached(k cacheKey) (*Material, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.cache[k]

	return m, ok
}

// bareName reports whether s names a single directory under the root.
func bareName(s string) bool {
	return fs.ValidPath(s) && s != "." && !strings.ContainsAny(s, `/\`)
}

// document is the on-disk schema; Parameters is inlined.
type document struct {
	Name       string `yaml:"name"`
	Parameters `yaml:",inline"`
}

func (s *Store) load(k cacheKey) (*Material, error) {
	var doc document

	base := k.name + ".yaml"
	if err := s.decode(base, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", base, ErrUnknownMaterial)
		}
		return nil, err
	}
	if k.system != "" {
		overlay := path.Join(k.system, k.name+".yaml")
		if err := s.decode(overlay, &doc); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%s: %w", overlay, ErrUnknownSystem)
			}
			return nil, err
		}
	}
	if doc.Name == "" {
		doc.Name = k.name
	}

	m, err := New(k.name, doc.Name, k.system, doc.Parameters)
	if err != nil {
		return nil, err
	}
	s.log.Debug("material loaded", "material", k.name, "system", k.system, "root", s.root)

	return m, nil
}

// decode reads file from the store root, falling back to the builtin table,
// and unmarshals it over doc so later files override earlier fields.
func (s *Store) decode(file string, doc *document) error {
	raw, err := fs.ReadFile(s.fsys, file)
	if errors.Is(err, fs.ErrNotExist) && s.builtin != nil {
		raw, err = fs.ReadFile(s.builtin, file)
	}
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %v: %w", file, err, ErrMalformedData)
	}

	return nil
}

var (
	storesMu sync.Mutex
	stores   = make(map[string]*Store)
)

// Lookup resolves name/system through a process-wide Store for root.
// An empty root means DefaultRoot.
func Lookup(name, system, root string) (*Material, error) {
	if root == "" {
		root = DefaultRoot
	}
	storesMu.Lock()
	s, ok := stores[root]
	if !ok {
		s = NewStore(WithRoot(root))
		stores[root] = s
	}
	storesMu.Unlock()

	return s.Lookup(name, system)
}
