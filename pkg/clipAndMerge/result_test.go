package clipAndMerge

import (
	"reflect"
	"testing"
)

func TestCollect(t *testing.T) {
	files := []LogFile{
		{F: fullLog, Root: "data/full", Fn: "full.log"},
		{F: "Total reads: 100\nReverse removed: 10\nMerged removed: 5\nDuplication Rate: 0.1\n", Root: "data/partial", Fn: "partial.log"},
		{F: "bwa mem finished\nreads mapped: 100\n", Root: "data/other", Fn: "bwa.log"},
	}
	data := Collect(files, rawNamer{})

	if len(data) != 2 {
		t.Fatalf("len(data) = %d, want 2: %v", len(data), data)
	}
	if _, ok := data["other"]; ok {
		t.Error("unrelated log collected")
	}
	if _, ok := data["partial"][NotRemoved]; ok {
		t.Error("partial record has not_removed")
	}
	if _, ok := data["full"][NotRemoved]; !ok {
		t.Error("full record lacks not_removed")
	}
}

func TestCollectLastWriteWins(t *testing.T) {
	files := []LogFile{
		{F: fullLog, Root: "a/s1"},
		{F: "Duplication Rate: 0.5\n", Root: "b/s1"},
	}
	data := Collect(files, constNamer("same"))

	want := ResultSet{"same": LogRecord{DuplicationRate: 0.5}}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("Collect() = %v, want %v", data, want)
	}
}

func TestResultSet_Ignore(t *testing.T) {
	data := ResultSet{
		"sample_1":  LogRecord{TotalReads: 1},
		"sample_2":  LogRecord{TotalReads: 2},
		"control_1": LogRecord{TotalReads: 3},
	}

	got := data.Ignore([]string{"control*", ""})
	if !reflect.DeepEqual(got.Samples(), []string{"sample_1", "sample_2"}) {
		t.Errorf("Ignore() samples = %v", got.Samples())
	}
	if len(data) != 3 {
		t.Error("Ignore() modified the receiver")
	}

	if got := data.Ignore(nil); len(got) != 3 {
		t.Errorf("Ignore(nil) kept %d samples, want 3", len(got))
	}
	if got := data.Ignore([]string{"*"}); len(got) != 0 {
		t.Errorf("Ignore(*) kept %d samples, want 0", len(got))
	}
}

func TestResultSet_Keys(t *testing.T) {
	data := ResultSet{
		"b": LogRecord{TotalReads: 1, NotRemoved: 1},
		"a": LogRecord{DuplicationRate: 0.1},
	}
	if got, want := data.Keys(), []string{DuplicationRate, NotRemoved, TotalReads}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := data.Samples(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Samples() = %v, want %v", got, want)
	}
}
