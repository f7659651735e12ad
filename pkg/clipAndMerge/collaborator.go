package clipAndMerge

// LogFile is one discovered log: its full text, the directory it was found in
// and its file name.
type LogFile struct {
	F    string
	Root string
	Fn   string
}

// SearchPattern describes how a tool's logs are discovered.
// Fn is a shell glob on the file name, Contents a string that must occur
// within the first NumLines lines. Empty fields are not checked.
type SearchPattern struct {
	Key      string
	Fn       string
	Contents string
	NumLines int
}

type FileLocator interface {
	Find(pattern SearchPattern) ([]LogFile, error)
}

// SampleNamer turns a raw name (the log's directory basename) into a report
// sample name. root is the full directory path.
type SampleNamer interface {
	CleanSampleName(sName, root string) string
}

// ReportSink receives everything the module contributes to a report.
type ReportSink interface {
	WriteDataFile(data ResultSet, name string) error
	AddGeneralStats(data ResultSet, columns []Column) error
	AddSection(section Section) error
	Close() error
}

// Section is one report section holding a bar graph of the data.
type Section struct {
	Name   string
	Anchor string
	Plot   *BarGraph
	Data   ResultSet
}
