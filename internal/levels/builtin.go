package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded levels sorted by ID. The embedded files are
// part of the binary, so a parse failure here is a build defect and panics.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded levels: %v", err))
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("levels: reading %s: %v", name, err))
		}
		parsed, err := parseByExtension(data, path.Ext(name))
		if err != nil {
			panic(fmt.Sprintf("levels: parsing %s: %v", name, err))
		}
		lvl := fromParsed(parsed, "")
		if err := lvl.Validate(); err != nil {
			panic(fmt.Sprintf("levels: %s: %v", name, err))
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels
}
