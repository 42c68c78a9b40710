package tptp

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/xDarkicex/atp/core"
)

// Loader resolves include('file') directives (§E) against a configured
// search path, the way the teacher's own config-struct pattern threads
// options through without a global: one Loader per CLI invocation,
// holding the --include-path search list and the in-progress include
// chain for cycle detection.
type Loader struct {
	searchPaths []string
	visiting    map[string]bool
}

// NewLoader builds a Loader that resolves a relative path against
// searchPaths, tried in order, falling back to the current working
// directory. For a file named by an include() directive, the including
// file's own directory is tried before searchPaths.
func NewLoader(searchPaths []string) *Loader {
	return &Loader{searchPaths: searchPaths, visiting: map[string]bool{}}
}

// Load reads path and every file it transitively includes, returning
// the concatenated annotated-formula units: the units of every included
// file first, in include-directive order, then path's own units in file
// order, wherever the include() lines appear in path. A cycle
// (a file including itself, directly or transitively) is reported as a
// KindUnsupportedConstruct ProverError rather than recursing forever.
func (l *Loader) Load(path string) ([]Unit, error) {
	abs, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	if l.visiting[abs] {
		return nil, core.NewProverError(core.KindUnsupportedConstruct, "tptp", "load",
			"circular include: "+abs)
	}
	l.visiting[abs] = true
	defer delete(l.visiting, abs)

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, core.NewProverError(core.KindParse, "tptp", "load", errors.Wrap(err, "reading "+abs).Error())
	}

	units, includes, err := ParseFile(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", abs)
	}

	dir := filepath.Dir(abs)
	all := make([]Unit, 0, len(units))
	childLoader := &Loader{searchPaths: append([]string{dir}, l.searchPaths...), visiting: l.visiting}
	for _, inc := range includes {
		childUnits, err := childLoader.Load(inc.File)
		if err != nil {
			return nil, errors.Wrapf(err, "including %s from %s", inc.File, abs)
		}
		if len(inc.Names) > 0 {
			childUnits = filterByName(childUnits, inc.Names)
		}
		all = append(all, childUnits...)
	}
	all = append(all, units...)
	return all, nil
}

func filterByName(units []Unit, names []string) []Unit {
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if want[u.Name] {
			out = append(out, u)
		}
	}
	return out
}

func (l *Loader) resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	for _, dir := range l.searchPaths {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", core.NewProverError(core.KindParse, "tptp", "load", err.Error())
			}
			return abs, nil
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", core.NewProverError(core.KindParse, "tptp", "load", err.Error())
	}
	return abs, nil
}
