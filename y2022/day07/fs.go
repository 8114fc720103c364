// Package day07 rebuilds a directory tree from a terminal transcript and
// finds directories by total size.
package day07

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventofcode/dfs"
	"github.com/katalvlaran/adventofcode/puzzle"
)

const kernel = "2022/07"

const (
	diskSize   = 70_000_000
	needFree   = 30_000_000
	smallLimit = 100_000
)

// Root is the id of "/".
const Root = 0

// Dir is one node of the arena. Children refer to other Dir ids.
type Dir struct {
	Name     string
	Parent   int
	Children map[string]int
	Files    int // sum of file sizes directly inside
}

// FS is an arena of directories indexed by id.
type FS struct {
	Dirs []Dir
}

// Neighbors lists the child directory ids of id in discovery order.
func (fs *FS) Neighbors(id int) []int {
	out := make([]int, 0, len(fs.Dirs[id].Children))
	for _, c := range fs.Dirs[id].Children {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// HasVertex reports whether id names a directory.
func (fs *FS) HasVertex(id int) bool { return id >= 0 && id < len(fs.Dirs) }

func (fs *FS) mkdir(parent int, name string) int {
	if id, ok := fs.Dirs[parent].Children[name]; ok {
		return id
	}
	id := len(fs.Dirs)
	fs.Dirs = append(fs.Dirs, Dir{Name: name, Parent: parent, Children: map[string]int{}})
	fs.Dirs[parent].Children[name] = id
	return id
}

// Parse replays "$ cd" and "$ ls" output. Files listed twice are counted once.
func Parse(input string) (*FS, error) {
	fs := &FS{Dirs: []Dir{{Name: "/", Parent: Root, Children: map[string]int{}}}}
	seen := map[string]bool{}
	cwd := Root
	for i, line := range puzzle.NonEmptyLines(input) {
		f := strings.Fields(line)
		switch {
		case len(f) == 3 && f[0] == "$" && f[1] == "cd":
			switch f[2] {
			case "/":
				cwd = Root
			case "..":
				cwd = fs.Dirs[cwd].Parent
			default:
				cwd = fs.mkdir(cwd, f[2])
			}
		case len(f) == 2 && f[0] == "$" && f[1] == "ls":
		case len(f) == 2 && f[0] == "dir":
			fs.mkdir(cwd, f[1])
		case len(f) == 2:
			size, err := strconv.Atoi(f[0])
			if err != nil {
				return nil, puzzle.Malformed(kernel, "line %d: %q", i+1, line)
			}
			key := fmt.Sprintf("%d/%s", cwd, f[1])
			if !seen[key] {
				seen[key] = true
				fs.Dirs[cwd].Files += size
			}
		default:
			return nil, puzzle.Malformed(kernel, "line %d: %q", i+1, line)
		}
	}

	return fs, nil
}

// Sizes returns the total size of every directory, indexed by id. Totals
// are accumulated as each directory exits the DFS, so children finish
// before parents.
func (fs *FS) Sizes(ctx context.Context) ([]int, error) {
	sizes := make([]int, len(fs.Dirs))
	_, err := dfs.DFS[int](fs, Root,
		dfs.WithContext[int](ctx),
		dfs.WithOnExit(func(id int) error {
			sizes[id] += fs.Dirs[id].Files
			if id != Root {
				sizes[fs.Dirs[id].Parent] += sizes[id]
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return sizes, nil
}

// Solve returns the sum of small directories and the size of the smallest
// directory whose removal frees enough space.
func Solve(ctx context.Context, input string) (puzzle.Answer, error) {
	fs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sizes, err := fs.Sizes(ctx)
	if err != nil {
		return puzzle.Answer{}, err
	}

	small := 0
	for _, s := range sizes {
		if s <= smallLimit {
			small += s
		}
	}
	missing := needFree - (diskSize - sizes[Root])
	best := sizes[Root]
	for _, s := range sizes {
		if s >= missing && s < best {
			best = s
		}
	}

	return puzzle.NewAnswer(small, best), nil
}
