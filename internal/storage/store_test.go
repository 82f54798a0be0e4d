package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/eggburst/internal/field"
	"github.com/san-kum/eggburst/internal/hinge"
	"github.com/san-kum/eggburst/internal/scene"
)

func sampleFrames() []FrameRecord {
	return []FrameRecord{
		{Frame: 1, Active: false, MeanY: 0.25},
		{Frame: 2, HingeLeft: 0.1, HingeRight: -0.1, Active: true, Frozen: 0, MeanY: 0.24},
		{Frame: 3, HingeLeft: 0.3, HingeRight: -0.3, Active: true, Frozen: 4, MeanY: 0.2},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{Preset: "classic", Seed: 42, Frames: 3, ClickAt: 1, Particles: 300,
		Summary: map[string]float64{"settle_frame": 3}}
	runID, err := st.Save(meta, sampleFrames())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Preset != "classic" || loaded.Seed != 42 {
		t.Errorf("unexpected metadata %+v", loaded)
	}
	if loaded.Summary["settle_frame"] != 3 {
		t.Errorf("expected settle_frame 3, got %f", loaded.Summary["settle_frame"])
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	want := sampleFrames()
	if len(frames) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(frames))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, want[i], frames[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	for _, name := range []string{"a", "b"} {
		if _, err := st.Save(RunMetadata{Preset: name}, nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Preset != "a" {
		t.Errorf("expected oldest run first, got %s", runs[0].Preset)
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runID, err := st.Save(RunMetadata{}, sampleFrames())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadFrames("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecord(t *testing.T) {
	info := scene.FrameInfo{
		Frame:  9,
		Hinge:  hinge.Mirror(0.5),
		Active: true,
		Field:  field.Stats{Count: 10, Frozen: 3, MeanY: -1.5},
	}
	got := Record(info)
	want := FrameRecord{Frame: 9, HingeLeft: 0.5, HingeRight: -0.5, Active: true, Frozen: 3, MeanY: -1.5}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
