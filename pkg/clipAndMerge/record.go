package clipAndMerge

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/cloudflare/ahocorasick"
)

// metric keys
const (
	TotalReads      = "total_reads"
	ReverseRemoved  = "reverse_removed"
	ForwardRemoved  = "forward_removed"
	MergedRemoved   = "merged_removed"
	TotalRemoved    = "total_removed"
	DuplicationRate = "duplication_rate"
	NotRemoved      = "not_removed"
)

// Field binds a metric key to the label ClipAndMerge prints before its value.
type Field struct {
	Key   string
	Label string
	reg   *regexp.Regexp
}

func newField(key, label string) Field {
	return Field{
		Key:   key,
		Label: label,
		reg:   regexp.MustCompile(`(?m)` + regexp.QuoteMeta(label) + `[ \t]+(\d+(?:\.\d+)?)`),
	}
}

// Fields in log order
var Fields = []Field{
	newField(TotalReads, "Total reads:"),
	newField(ReverseRemoved, "Reverse removed:"),
	newField(ForwardRemoved, "Forward removed:"),
	newField(MergedRemoved, "Merged removed:"),
	newField(TotalRemoved, "Total removed:"),
	newField(DuplicationRate, "Duplication Rate:"),
}

var labelMatcher = newLabelMatcher(Fields)

func newLabelMatcher(fields []Field) *ahocorasick.Matcher {
	var labels []string
	for _, field := range fields {
		labels = append(labels, field.Label)
	}
	return ahocorasick.NewStringMatcher(labels)
}

// LogRecord maps metric key to value. Keys are present only when found.
type LogRecord map[string]float64

// Parse extracts the ClipAndMerge statistics from the text of one log.
// It returns nil when none of the labels are found. Not safe for concurrent
// use: the label matcher keeps per-call state.
func Parse(text string) LogRecord {
	var hits = labelMatcher.Match([]byte(text))
	if len(hits) == 0 {
		return nil
	}

	var record = make(LogRecord)
	for _, i := range hits {
		var field = Fields[i]
		var m = field.reg.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		record[field.Key] = v
	}
	if len(record) == 0 {
		return nil
	}

	if !record.addNotRemoved() {
		slog.Debug("Could not calculate not_removed", slog.Group("record", "keys", len(record)))
	}
	return record
}

// addNotRemoved derives not_removed when all four operands are present.
// The result is not clamped and may be negative.
func (record LogRecord) addNotRemoved() bool {
	var operands [4]float64
	for i, key := range []string{TotalReads, ReverseRemoved, ForwardRemoved, MergedRemoved} {
		v, ok := record[key]
		if !ok {
			return false
		}
		operands[i] = v
	}
	record[NotRemoved] = operands[0] - operands[1] - operands[2] - operands[3]
	return true
}

// Extract parses f and names the record after the directory the log was found in.
func Extract(f LogFile, namer SampleNamer) (name string, record LogRecord, ok bool) {
	record = Parse(f.F)
	if record == nil {
		return "", nil, false
	}
	name = namer.CleanSampleName(filepath.Base(f.Root), f.Root)
	return name, record, true
}
