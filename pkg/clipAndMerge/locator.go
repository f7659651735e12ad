package clipAndMerge

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	gzip "github.com/klauspost/pgzip"
)

// regexp
var (
	gz = regexp.MustCompile(`\.gz$`)
)

// DefaultFileSizeLimit skips logs larger than 50MB
const DefaultFileSizeLimit = 50 << 20

// DirLocator finds logs below a set of files or directories.
type DirLocator struct {
	Paths         []string
	FileSizeLimit int64
}

func NewDirLocator(paths ...string) *DirLocator {
	return &DirLocator{
		Paths:         paths,
		FileSizeLimit: DefaultFileSizeLimit,
	}
}

// Find walks every path and returns the logs matching pattern in walk order.
func (l *DirLocator) Find(pattern SearchPattern) ([]LogFile, error) {
	var files []LogFile
	for _, root := range l.Paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				slog.Warn("skip unreadable path", "path", path, "err", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			f, ok := l.load(path, d, pattern)
			if ok {
				files = append(files, f)
			}
			return nil
		})
		if err != nil {
			return files, fmt.Errorf("search %s: %w", root, err)
		}
	}
	slog.Debug("Find", slog.Group("pattern", "key", pattern.Key, "files", len(files)))
	return files, nil
}

func (l *DirLocator) load(path string, d fs.DirEntry, pattern SearchPattern) (LogFile, bool) {
	var fn = d.Name()
	if pattern.Fn != "" {
		if ok, _ := filepath.Match(pattern.Fn, fn); !ok {
			return LogFile{}, false
		}
	}
	if l.FileSizeLimit > 0 {
		info, err := d.Info()
		if err != nil || info.Size() > l.FileSizeLimit {
			slog.Debug("skip large or unstat-able file", "path", path)
			return LogFile{}, false
		}
	}

	content, err := ReadLog(path)
	if err != nil {
		slog.Warn("skip unreadable file", "path", path, "err", err)
		return LogFile{}, false
	}
	if !ContainsInHead(content, pattern.Contents, pattern.NumLines) {
		return LogFile{}, false
	}
	return LogFile{
		F:    string(content),
		Root: filepath.Dir(path),
		Fn:   fn,
	}, true
}

// ReadLog reads a whole log, decompressing it when the name ends in .gz.
func ReadLog(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if gz.MatchString(path) {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	}
	return io.ReadAll(r)
}

// ContainsInHead reports whether s occurs within the first numLines lines of
// content. Empty s always matches, numLines <= 0 searches everything.
func ContainsInHead(content []byte, s string, numLines int) bool {
	if s == "" {
		return true
	}
	if numLines <= 0 {
		return bytes.Contains(content, []byte(s))
	}
	var scanner = bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), len(content)+1)
	for i := 0; i < numLines && scanner.Scan(); i++ {
		if strings.Contains(scanner.Text(), s) {
			return true
		}
	}
	return false
}
