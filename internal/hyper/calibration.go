// Calibration keeps an advisory, disk-persisted tally of how confident the
// top fix-it was each time a diagnostic code was promoted. Nothing in the
// promotion logic reads it back yet; it exists so a future confidence
// model has historical ground truth to calibrate against. The read-modify-
// write-on-every-call, mutex-guarded, atomic-rename persistence strategy
// is grounded directly on the teacher's driver.DiskCache (Put/Get pair
// around a msgpack-encoded temp file renamed into place).
package hyper

import (
	"os"
	"path/filepath"
	"sync"

	"snask/internal/cachepath"
	"snask/internal/diag"

	"github.com/vmihailenco/msgpack/v5"
)

// CalibrationStats accumulates how confident top fix-its have been for one
// diagnostic code.
type CalibrationStats struct {
	Seen          int
	ConfidenceSum int
}

// Average returns the mean top-fixit confidence seen for this code, or 0
// if it has never been seen.
func (s CalibrationStats) Average() float64 {
	if s.Seen == 0 {
		return 0
	}
	return float64(s.ConfidenceSum) / float64(s.Seen)
}

// CalibrationIndex is a mutex-guarded, disk-backed map[Code]CalibrationStats.
type CalibrationIndex struct {
	mu   sync.Mutex
	path string
	data map[diag.Code]CalibrationStats
}

// OpenCalibrationIndex loads (or creates) the calibration index at
// <user-config-dir>/snask/diagnostics/calibration.mp.
func OpenCalibrationIndex() (*CalibrationIndex, error) {
	path, err := cachepath.File("calibration.mp", "diagnostics")
	if err != nil {
		return nil, err
	}
	idx := &CalibrationIndex{path: path, data: make(map[diag.Code]CalibrationStats)}
	if err := idx.load(); err != nil {
		return nil, err
	}
	return idx, nil
}

func (idx *CalibrationIndex) load() error {
	f, err := os.Open(idx.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var data map[diag.Code]CalibrationStats
	if err := msgpack.NewDecoder(f).Decode(&data); err != nil {
		return err
	}
	idx.data = data
	return nil
}

func (idx *CalibrationIndex) save() error {
	dir := filepath.Dir(idx.path)
	tmp, err := os.CreateTemp(dir, "calibration-*.mp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := msgpack.NewEncoder(tmp).Encode(idx.data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, idx.path)
}

// Record updates code's running stats with a newly observed top-fixit
// confidence and persists the index.
func (idx *CalibrationIndex) Record(code diag.Code, confidence int) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	stats := idx.data[code]
	stats.Seen++
	stats.ConfidenceSum += confidence
	idx.data[code] = stats

	return idx.save()
}

// Stats returns the recorded stats for code, if any.
func (idx *CalibrationIndex) Stats(code diag.Code) (CalibrationStats, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	s, ok := idx.data[code]
	return s, ok
}
