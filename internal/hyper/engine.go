package hyper

import (
	"snask/internal/clock"
	"snask/internal/diag"
	"snask/internal/explain"
	"snask/internal/source"
)

// Engine ties promotion, the calibration index, and trace writing into one
// call so callers don't have to thread three collaborators through.
type Engine struct {
	Explanations *explain.Table
	Calibration  *CalibrationIndex
	Clock        clock.Clock
	Files        *source.FileSet
}

// NewEngine builds an Engine backed by the real clock and a freshly loaded
// calibration index and explanation table.
func NewEngine(fs *source.FileSet) (*Engine, error) {
	cal, err := OpenCalibrationIndex()
	if err != nil {
		return nil, err
	}
	return &Engine{
		Explanations: explain.MustLoad(),
		Calibration:  cal,
		Clock:        clock.Real{},
		Files:        fs,
	}, nil
}

// Process promotes h onto its base Diagnostic, records the top fix-it's
// confidence in the calibration index, and writes a trace record if
// SNASK_TRACE is set. Calibration and trace errors are swallowed: both are
// advisory side channels that must never block compilation.
func (e *Engine) Process(h *HyperDiagnostic) *diag.Diagnostic {
	d := Promote(h, e.Explanations)

	if fix, ok := h.topFixit(); ok && e.Calibration != nil {
		_ = e.Calibration.Record(d.Code, fix.Confidence)
	}
	if e.Files != nil {
		_ = WriteTrace(e.Clock, e.Files, h)
	}

	return d
}
