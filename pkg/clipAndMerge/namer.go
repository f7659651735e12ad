package clipAndMerge

import (
	"path/filepath"
	"strings"
)

const trimChars = "._- "

// CleanNamer cleans raw sample names by cutting at known file extensions.
type CleanNamer struct {
	Exts []string

	// PrependDirs prefixes the name with up to PrependDirsDepth trailing
	// directories of root, joined with " | ". A depth of 0 uses all of them.
	PrependDirs      bool
	PrependDirsDepth int
}

func NewCleanNamer(cfg *Config) *CleanNamer {
	return &CleanNamer{Exts: cfg.FnCleanExts}
}

func (n *CleanNamer) CleanSampleName(sName, root string) string {
	var name = sName
	for _, ext := range n.Exts {
		if ext == "" {
			continue
		}
		if i := strings.Index(name, ext); i > 0 {
			name = name[:i]
		}
	}
	name = strings.Trim(name, trimChars)
	if name == "" {
		name = sName
	}

	if n.PrependDirs {
		var dirs = rootDirs(filepath.Dir(root))
		if n.PrependDirsDepth > 0 && len(dirs) > n.PrependDirsDepth {
			dirs = dirs[len(dirs)-n.PrependDirsDepth:]
		}
		if len(dirs) > 0 {
			name = strings.Join(append(dirs, name), " | ")
		}
	}
	return name
}

func rootDirs(dir string) []string {
	var dirs []string
	for _, s := range strings.Split(filepath.ToSlash(dir), "/") {
		if s == "" || s == "." || s == ".." {
			continue
		}
		dirs = append(dirs, s)
	}
	return dirs
}
