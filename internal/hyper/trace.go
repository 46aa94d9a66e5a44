// Trace writes an optional, local-only JSONL record of each promoted
// HyperDiagnostic, gated on the SNASK_TRACE environment variable exactly
// like spec.md §4.B/C describes. Records are appended, never rewritten, so
// concurrent processes sharing one trace file never corrupt each other
// (spec.md §5's append-only contract).
package hyper

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"snask/internal/cachepath"
	"snask/internal/clock"
	"snask/internal/source"
)

// TraceEnvVar is the environment variable that enables trace output.
const TraceEnvVar = "SNASK_TRACE"

// TraceRecord is one JSONL line in a trace file.
type TraceRecord struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Hash      string `json:"hash"`
	Message   string `json:"message"`
	File      string `json:"file"`
	Timestamp string `json:"timestamp"`
}

// TraceEnabled reports whether SNASK_TRACE is set.
func TraceEnabled() bool {
	return os.Getenv(TraceEnvVar) != ""
}

// WriteTrace appends a trace record for h to the day-named trace file
// under <user-config-dir>/snask/diagnostics/traces/, if tracing is
// enabled. It is a no-op (returning nil) when SNASK_TRACE is unset.
func WriteTrace(clk clock.Clock, fs *source.FileSet, h *HyperDiagnostic) error {
	if !TraceEnabled() {
		return nil
	}

	d := h.Base
	span := d.Primary()
	f := fs.Get(span.File)

	window := contextWindow(f, span.Start.Line, 2)
	rec := TraceRecord{
		ID:        h.ID.String(),
		Code:      string(d.Code),
		Hash:      windowHash(string(d.Code), span, window),
		Message:   d.Message,
		File:      f.Path,
		Timestamp: clk.Now().Format("2006-01-02T15:04:05Z07:00"),
	}

	name := clk.Now().Format("2006-01-02") + ".jsonl"
	path, err := cachepath.File(name, "diagnostics", "traces")
	if err != nil {
		return err
	}

	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer fh.Close()

	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fh.Write(append(line, '\n'))
	return err
}

func contextWindow(f *source.File, center uint32, radius uint32) []string {
	var lines []string
	lo := uint32(1)
	if center > radius {
		lo = center - radius
	}
	for l := lo; l <= center+radius; l++ {
		text := f.GetLine(l)
		if text == "" && l > center {
			break
		}
		lines = append(lines, text)
	}
	return lines
}

func windowHash(code string, span source.Span, window []string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d:%d-%d:%d\x00%s", code, span.Start.Line, span.Start.Column, span.End.Line, span.End.Column, strings.Join(window, "\n"))
	return hex.EncodeToString(h.Sum(nil))
}
