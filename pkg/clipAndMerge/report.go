package clipAndMerge

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrNoReports means no log produced a record after ignore filtering.
// The caller should skip this module rather than fail the report.
var ErrNoReports = errors.New("clipandmerge: no reports found")

// Report runs the module: find logs, parse, filter, then hand the results to Sink.
type Report struct {
	Name   string
	Anchor string
	Href   string
	Info   string

	Pattern       SearchPattern
	IgnoreSamples []string

	Locator FileLocator
	Namer   SampleNamer
	Sink    ReportSink

	Data ResultSet
}

func NewReport(cfg *Config, locator FileLocator, namer SampleNamer, sink ReportSink) *Report {
	return &Report{
		Name:    "ClipAndMerge",
		Anchor:  "clipandmerge",
		Href:    "http://www.github.com/apeltzer/ClipAndMerge",
		Info:    "is a tool for adapter clipping and read merging for ancient DNA data.",
		Pattern: cfg.SearchPattern(SearchKey),
		Locator: locator,
		Namer:   namer,
		Sink:    sink,
	}
}

func (r *Report) Run() error {
	now := time.Now()

	files, err := r.Locator.Find(r.Pattern)
	if err != nil {
		return err
	}
	r.Data = Collect(files, r.Namer).Ignore(r.IgnoreSamples)
	if len(r.Data) == 0 {
		return ErrNoReports
	}
	slog.Info(fmt.Sprintf("Found %d reports", len(r.Data)), slog.Group("report", "name", r.Name, "files", len(files)))

	if err = r.Sink.WriteDataFile(r.Data, "multiqc_"+r.Anchor); err != nil {
		return err
	}
	if err = r.Sink.AddGeneralStats(r.Data, GeneralStatsColumns()); err != nil {
		return err
	}
	err = r.Sink.AddSection(Section{
		Name:   r.Name,
		Anchor: r.Anchor,
		Plot:   NewBarGraph(),
		Data:   r.Data,
	})
	if err != nil {
		return err
	}
	if err = r.Sink.Close(); err != nil {
		return err
	}

	slog.Info("Done", slog.Group("report", "name", r.Name, "time", time.Since(now)))
	return nil
}

// SummaryMarkdown lists every sample with its read counts and duplication rate.
func (r *Report) SummaryMarkdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**: %d samples\n", r.Name, len(r.Data))
	for _, name := range r.Data.Samples() {
		var record = r.Data[name]
		fmt.Fprintf(&sb, "> %s", name)
		if v, ok := record[TotalReads]; ok {
			fmt.Fprintf(&sb, "  total reads: %s", formatCount(v))
		}
		if v, ok := record[NotRemoved]; ok {
			fmt.Fprintf(&sb, "  not removed: %s", formatCount(v))
		}
		if v, ok := record[DuplicationRate]; ok {
			fmt.Fprintf(&sb, "  duplication: %s", DuplicationRateColumn.Display(v))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatCount(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
