// Package problems resolves puzzle names to problem text. A catalog is an
// ordered name list plus one "<name>.txt" file per name, read from a
// directory or from the set compiled into the binary.
package problems

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-robots/internal/games/robots/core"
)

//go:embed data
var embedded embed.FS

// ErrNotFound is returned for names missing from the catalog.
var ErrNotFound = errors.New("problem not found")

// indexFiles are tried in order. JSON is valid YAML, so one decoder reads both.
var indexFiles = []string{"index.json", "index.yaml", "index.yml"}

const problemExt = ".txt"

// Catalog is an ordered list of problem names backed by a file system.
type Catalog struct {
	fsys  fs.FS
	names []string
	index map[string]int
}

// Open reads the catalog stored in dir.
func Open(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("problems: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("problems: %s is not a directory", dir)
	}
	return FromFS(os.DirFS(dir))
}

// Embedded returns the catalog compiled into the binary.
func Embedded() *Catalog {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("problems: embedded data: %v", err))
	}
	c, err := FromFS(sub)
	if err != nil {
		panic(fmt.Sprintf("problems: embedded data: %v", err))
	}
	return c
}

// FromFS builds a catalog from the root of fsys. The order comes from the
// first index file found; without one, the sorted .txt basenames are used.
func FromFS(fsys fs.FS) (*Catalog, error) {
	names, err := readIndex(fsys)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names, err = scanNames(fsys)
		if err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		fsys:  fsys,
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := c.index[n]; dup {
			return nil, fmt.Errorf("problems: duplicate name %q in index", n)
		}
		c.index[n] = len(c.names)
		c.names = append(c.names, n)
	}
	return c, nil
}

func readIndex(fsys fs.FS) ([]string, error) {
	for _, file := range indexFiles {
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("problems: reading %s: %w", file, err)
		}
		var names []string
		if err := yaml.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("problems: parsing %s: %w", file, err)
		}
		if names == nil {
			names = []string{}
		}
		return names, nil
	}
	return nil, nil
}

func scanNames(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("problems: listing: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != problemExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), problemExt))
	}
	sort.Strings(names)
	return names, nil
}

// Names returns the problem names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of problems.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Index returns the position of name, or -1.
func (c *Catalog) Index(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Name returns the name at position i after wrapping.
func (c *Catalog) Name(i int) string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[c.Wrap(i)]
}

// Wrap maps any index onto [0, Len()), so stepping past either end cycles.
func (c *Catalog) Wrap(i int) int {
	n := len(c.names)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Text returns the raw problem text for name.
func (c *Catalog) Text(name string) (string, error) {
	if _, ok := c.index[name]; !ok {
		return "", fmt.Errorf("problems: %q: %w", name, ErrNotFound)
	}
	data, err := fs.ReadFile(c.fsys, name+problemExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("problems: %q: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("problems: reading %q: %w", name, err)
	}
	return string(data), nil
}

// Load reads and parses the problem called name.
func (c *Catalog) Load(name string) (*core.Problem, error) {
	text, err := c.Text(name)
	if err != nil {
		return nil, err
	}
	return core.ParseProblem(name, text)
}

// LoadAt loads the problem at position i after wrapping.
func (c *Catalog) LoadAt(i int) (*core.Problem, error) {
	if len(c.names) == 0 {
		return nil, fmt.Errorf("problems: empty catalog: %w", ErrNotFound)
	}
	return c.Load(c.Name(i))
}
