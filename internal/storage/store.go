// Package storage keeps traces of headless runs on disk for later plotting.
// A trace is analysis output only; nothing reads it back into a live scene.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/eggburst/internal/scene"
)

var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	ClickAt   int                `json:"click_at"`
	Particles int                `json:"particles"`
	Variant   string             `json:"variant"`
	Method    string             `json:"method"`
	Summary   map[string]float64 `json:"summary"`
}

// FrameRecord is one row of frames.csv.
type FrameRecord struct {
	Frame      int
	HingeLeft  float64
	HingeRight float64
	Active     bool
	Frozen     int
	MeanY      float64
}

func Record(info scene.FrameInfo) FrameRecord {
	return FrameRecord{
		Frame:      info.Frame,
		HingeLeft:  info.Hinge.Left,
		HingeRight: info.Hinge.Right,
		Active:     info.Active,
		Frozen:     info.Field.Frozen,
		MeanY:      info.Field.MeanY,
	}
}

var frameHeader = []string{"frame", "hinge_left", "hinge_right", "active", "frozen", "mean_y"}

func (s *Store) Save(meta RunMetadata, frames []FrameRecord) (string, error) {
	name := meta.Preset
	if name == "" {
		name = "run"
	}
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", name, meta.Timestamp.UnixNano())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(frameHeader); err != nil {
		return "", err
	}
	for _, f := range frames {
		row := []string{
			strconv.Itoa(f.Frame),
			strconv.FormatFloat(f.HingeLeft, 'f', 6, 64),
			strconv.FormatFloat(f.HingeRight, 'f', 6, 64),
			strconv.FormatBool(f.Active),
			strconv.Itoa(f.Frozen),
			strconv.FormatFloat(f.MeanY, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]FrameRecord, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(frameHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameRecord{}, nil
	}

	frames := make([]FrameRecord, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := parseFrame(rec)
		if err != nil {
			return nil, fmt.Errorf("storage: %s row %d: %w", runID, i+1, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrame(rec []string) (FrameRecord, error) {
	var f FrameRecord
	var err error
	if f.Frame, err = strconv.Atoi(rec[0]); err != nil {
		return f, err
	}
	if f.HingeLeft, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return f, err
	}
	if f.HingeRight, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return f, err
	}
	if f.Active, err = strconv.ParseBool(rec[3]); err != nil {
		return f, err
	}
	if f.Frozen, err = strconv.Atoi(rec[4]); err != nil {
		return f, err
	}
	if f.MeanY, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return f, err
	}
	return f, nil
}
