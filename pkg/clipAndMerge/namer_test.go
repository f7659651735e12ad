package clipAndMerge

import "testing"

func TestCleanNamer_CleanSampleName(t *testing.T) {
	exts := []string{".gz", ".fastq", ".log", "_clipandmerge"}
	tests := []struct {
		name  string
		namer CleanNamer
		sName string
		root  string
		want  string
	}{
		{"plain", CleanNamer{Exts: exts}, "sample1", "out/sample1", "sample1"},
		{"extension", CleanNamer{Exts: exts}, "sample1.fastq.gz", "out/sample1.fastq.gz", "sample1"},
		{"suffix", CleanNamer{Exts: exts}, "sample1_clipandmerge", "out/sample1_clipandmerge", "sample1"},
		{"trim", CleanNamer{Exts: exts}, "_sample1-", "out/_sample1-", "sample1"},
		{"leading dot trimmed", CleanNamer{Exts: exts}, ".log", "out/.log", "log"},
		{"prepend all", CleanNamer{Exts: exts, PrependDirs: true}, "s1", "run1/lane2/s1", "run1 | lane2 | s1"},
		{"prepend depth", CleanNamer{Exts: exts, PrependDirs: true, PrependDirsDepth: 1}, "s1", "run1/lane2/s1", "lane2 | s1"},
		{"prepend nothing", CleanNamer{Exts: exts, PrependDirs: true}, "s1", "s1", "s1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.namer.CleanSampleName(tt.sName, tt.root); got != tt.want {
				t.Errorf("CleanSampleName(%q, %q) = %q, want %q", tt.sName, tt.root, got, tt.want)
			}
		})
	}
}
