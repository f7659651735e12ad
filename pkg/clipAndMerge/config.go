package clipAndMerge

import (
	"embed"
	"strconv"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// SearchKey names the ClipAndMerge entry in etc/search_patterns.txt
const SearchKey = "clipandmerge"

// embed etc
//
//go:embed etc/*.txt
var EtcFS embed.FS

type Config struct {
	SearchPatterns map[string]SearchPattern
	FnCleanExts    []string
}

// LoadConfig reads etc/*.txt from cfgFS, falling back to cfgPath on disk.
func LoadConfig(cfgPath string, cfgFS embed.FS) *Config {
	var cfg = &Config{
		SearchPatterns: make(map[string]SearchPattern),
	}

	var patterns, _ = osUtil.FS2MapArray(osUtil.OpenFS("etc/search_patterns.txt", cfgPath, cfgFS), "\t", nil)
	for _, m := range patterns {
		var p = SearchPattern{
			Key:      m["Key"],
			Fn:       m["Fn"],
			Contents: m["Contents"],
		}
		if m["NumLines"] != "" {
			p.NumLines = simpleUtil.HandleError(strconv.Atoi(m["NumLines"]))
		}
		cfg.SearchPatterns[p.Key] = p
	}

	cfg.FnCleanExts = osUtil.FS2Array(osUtil.OpenFS("etc/fn_clean_exts.txt", cfgPath, cfgFS))
	return cfg
}

// SearchPattern returns the pattern for key, or one matching every file.
func (cfg *Config) SearchPattern(key string) SearchPattern {
	var p, ok = cfg.SearchPatterns[key]
	if !ok {
		return SearchPattern{Key: key}
	}
	return p
}
