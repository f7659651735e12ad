package clipAndMerge

import (
	"log/slog"
	"path/filepath"
	"sort"
)

// ResultSet maps sample name to its record.
type ResultSet map[string]LogRecord

// Collect folds the logs into a ResultSet in order. Files that match none of
// the labels are skipped; a later file with the same sample name replaces the
// earlier record as a whole.
func Collect(files []LogFile, namer SampleNamer) ResultSet {
	var data = make(ResultSet)
	for _, f := range files {
		data.Add(f, namer)
	}
	return data
}

// Add extracts f into data, reporting whether a record was stored.
func (data ResultSet) Add(f LogFile, namer SampleNamer) bool {
	name, record, ok := Extract(f, namer)
	if !ok {
		return false
	}
	if _, dup := data[name]; dup {
		slog.Debug("duplicate sample name, overwriting", slog.Group("log", "name", name, "root", f.Root, "fn", f.Fn))
	}
	data[name] = record
	return true
}

// Ignore returns a copy of data without the samples matching any of the
// shell glob patterns.
func (data ResultSet) Ignore(patterns []string) ResultSet {
	var kept = make(ResultSet, len(data))
	for name, record := range data {
		if matchAny(name, patterns) {
			slog.Debug("ignore sample", "name", name)
			continue
		}
		kept[name] = record
	}
	return kept
}

func matchAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Samples returns the sample names sorted.
func (data ResultSet) Samples() []string {
	var samples = make([]string, 0, len(data))
	for name := range data {
		samples = append(samples, name)
	}
	sort.Strings(samples)
	return samples
}

// Keys returns every metric key present in any record, sorted.
func (data ResultSet) Keys() []string {
	var set = make(map[string]bool)
	for _, record := range data {
		for k := range record {
			set[k] = true
		}
	}
	var keys = make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
