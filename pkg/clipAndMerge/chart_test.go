package clipAndMerge

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewBarGraph(t *testing.T) {
	g := NewBarGraph()
	want := []Category{
		{NotRemoved, "Not Removed"},
		{ReverseRemoved, "Reverse Removed"},
		{ForwardRemoved, "Forward Removed"},
		{MergedRemoved, "Merged Removed"},
	}
	if !reflect.DeepEqual(g.Categories, want) {
		t.Errorf("Categories = %v, want %v", g.Categories, want)
	}
	if g.HideZeroCats {
		t.Error("HideZeroCats = true, want false")
	}
	if g.ID != "clipandmerge_rates" || g.YLab != "# Reads" {
		t.Errorf("unexpected config %+v", g)
	}
}

func TestBarGraph_Series(t *testing.T) {
	data := ResultSet{
		"b": LogRecord{NotRemoved: 80, ReverseRemoved: 10, ForwardRemoved: 0, MergedRemoved: 10},
		"a": LogRecord{ReverseRemoved: 5, MergedRemoved: 5},
	}
	g := NewBarGraph()

	samples, cats, values := g.Series(data)
	if !reflect.DeepEqual(samples, []string{"a", "b"}) {
		t.Errorf("samples = %v", samples)
	}
	if len(cats) != 4 {
		t.Fatalf("got %d categories, want 4 with the all-zero one kept", len(cats))
	}
	want := [][]float64{{0, 80}, {5, 10}, {0, 0}, {5, 10}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}

	g.HideZeroCats = true
	_, cats, values = g.Series(data)
	if len(cats) != 3 || cats[2].Key != MergedRemoved || len(values) != 3 {
		t.Errorf("HideZeroCats categories = %v", cats)
	}
}

func TestBarGraph_Percentages(t *testing.T) {
	data := ResultSet{
		"a": LogRecord{NotRemoved: 75, ReverseRemoved: 25},
		"z": LogRecord{TotalReads: 0},
	}
	_, _, values := NewBarGraph().Percentages(data)
	want := [][]float64{{75, 0}, {25, 0}, {0, 0}, {0, 0}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("Percentages values = %v, want %v", values, want)
	}
}

func TestBarGraph_RenderHTML(t *testing.T) {
	data := ResultSet{"s1": Parse(fullLog)}
	var buf bytes.Buffer
	if err := NewBarGraph().RenderHTML(&buf, data); err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	html := buf.String()
	for _, s := range []string{"Not Removed", "Merged Removed", "s1"} {
		if !strings.Contains(html, s) {
			t.Errorf("html lacks %q", s)
		}
	}
}

func TestBarGraph_SavePNG(t *testing.T) {
	data := ResultSet{
		"s1": Parse(fullLog),
		"s2": LogRecord{ReverseRemoved: 3},
	}
	path := filepath.Join(t.TempDir(), "plot.png")
	if err := NewBarGraph().SavePNG(path, data); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}
