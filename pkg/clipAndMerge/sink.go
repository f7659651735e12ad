package clipAndMerge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// FileSink writes the report pieces as files under Dir.
type FileSink struct {
	Dir       string
	ExportPNG bool

	Written []string
}

func NewFileSink(dir string, exportPNG bool) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &FileSink{Dir: dir, ExportPNG: exportPNG}, nil
}

func (s *FileSink) path(name string) string {
	var p = filepath.Join(s.Dir, name)
	s.Written = append(s.Written, p)
	return p
}

// WriteDataFile dumps data as <name>.txt
func (s *FileSink) WriteDataFile(data ResultSet, name string) error {
	var out = osUtil.Create(s.path(name + ".txt"))
	defer simpleUtil.DeferClose(out)
	WriteDataTsv(out, data)
	slog.Info("WriteDataFile", slog.Group("sink", "name", name, "samples", len(data)))
	return nil
}

// WriteDataTsv writes a header of Sample plus every key, then one sorted row
// per sample. Missing values are empty.
func WriteDataTsv(w *os.File, data ResultSet) {
	var keys = data.Keys()
	fmtUtil.FprintStringArray(w, append([]string{"Sample"}, keys...), "\t")
	for _, name := range data.Samples() {
		var row = []string{name}
		for _, k := range keys {
			var cell string
			if v, ok := data[name][k]; ok {
				cell = strconv.FormatFloat(v, 'f', -1, 64)
			}
			row = append(row, cell)
		}
		fmtUtil.FprintStringArray(w, row, "\t")
	}
}

func (s *FileSink) AddGeneralStats(data ResultSet, columns []Column) error {
	var xlsx = GeneralStatsXlsx(data, columns)
	var p = s.path("general_stats.xlsx")
	slog.Info("save xlsx", slog.Group("sink", "path", p))
	if err := xlsx.SaveAs(p); err != nil {
		return fmt.Errorf("save %s: %w", p, err)
	}
	return xlsx.Close()
}

func (s *FileSink) AddSection(section Section) error {
	var out = osUtil.Create(s.path(section.Anchor + ".html"))
	defer simpleUtil.DeferClose(out)
	if err := section.Plot.RenderHTML(out, section.Data); err != nil {
		return fmt.Errorf("render %s: %w", section.Anchor, err)
	}

	if s.ExportPNG {
		var p = s.path(section.Plot.ID + ".png")
		if err := section.Plot.SavePNG(p, section.Data); err != nil {
			return fmt.Errorf("save %s: %w", p, err)
		}
	}
	return nil
}

func (s *FileSink) Close() error {
	slog.Info("FileSink Close", slog.Group("sink", "dir", s.Dir, "files", len(s.Written)))
	return nil
}
