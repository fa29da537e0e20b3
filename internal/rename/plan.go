package rename

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/michaelscutari/mv123/internal/entry"
	"github.com/michaelscutari/mv123/internal/pathutil"
	"github.com/michaelscutari/mv123/internal/scan"
)

// ErrNameCollision is returned when two files would be given the same name.
var ErrNameCollision = errors.New("computed names collide")

// Pair maps an existing path to the path it will be renamed to.
type Pair struct {
	Old string
	New string
}

// Changed reports whether applying the pair touches the filesystem.
func (p Pair) Changed() bool {
	return p.Old != p.New
}

// Plan is the ordered list of renames for one directory, index-aligned with
// the sorted listing it was built from.
type Plan struct {
	Directory string
	Filter    string
	Pairs     []Pair
}

// Len returns the number of listed files.
func (p *Plan) Len() int {
	return len(p.Pairs)
}

// ChangedCount returns the number of pairs that are not no-ops.
func (p *Plan) ChangedCount() int {
	n := 0
	for _, pair := range p.Pairs {
		if pair.Changed() {
			n++
		}
	}
	return n
}

// Width returns the zero-padding width for n files: the number of decimal
// digits in n.
func Width(n int) int {
	return len(strconv.Itoa(n))
}

// Entries decomposes paths into directory, base name and extension.
func Entries(paths []string) []entry.FileEntry {
	entries := make([]entry.FileEntry, 0, len(paths))
	for _, p := range paths {
		dir, base, ext := pathutil.SplitPath(p)
		entries = append(entries, entry.FileEntry{Path: p, Dir: dir, Base: base, Ext: ext})
	}
	return entries
}

// ComputeNewNames numbers paths by position. The path at 1-based position k
// keeps its directory and extension and gets k, zero-padded to the digit
// count of len(paths), as its base name. Numbers embedded in the original
// names are ignored; callers sort first when order matters.
func ComputeNewNames(paths []string) []string {
	width := Width(len(paths))
	names := make([]string, 0, len(paths))
	for k, e := range Entries(paths) {
		name := fmt.Sprintf("%0*d%s", width, k+1, e.Ext)
		names = append(names, filepath.Join(e.Dir, name))
	}
	return names
}

// NewPlan pairs each path with its computed name. It fails with
// ErrNameCollision if two computed names are equal.
func NewPlan(directory, filter string, paths []string) (*Plan, error) {
	newNames := ComputeNewNames(paths)

	plan := &Plan{
		Directory: directory,
		Filter:    filter,
		Pairs:     make([]Pair, len(paths)),
	}

	for i, old := range paths {
		plan.Pairs[i] = Pair{Old: old, New: newNames[i]}
	}
	if err := checkCollisions(plan.Pairs); err != nil {
		return nil, err
	}

	return plan, nil
}

func checkCollisions(pairs []Pair) error {
	seen := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if prev, ok := seen[p.New]; ok {
			return fmt.Errorf("%w: %q and %q both map to %q", ErrNameCollision, prev, p.Old, p.New)
		}
		seen[p.New] = p.Old
	}
	return nil
}

// BuildPlan lists the files in directory matching pattern and computes their
// new names. It never touches the filesystem beyond reading the directory.
func BuildPlan(directory string, opts *scan.Options) (*Plan, error) {
	if opts == nil {
		opts = scan.DefaultOptions()
	}
	paths, err := scan.List(directory, opts)
	if err != nil {
		return nil, err
	}
	filter := ""
	if opts.Pattern != nil {
		filter = opts.Pattern.String()
	}
	return NewPlan(directory, filter, paths)
}
