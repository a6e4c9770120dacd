package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/digital-pricer/internal/engine"
)

// WriteJSON marshals v indented into <outdir>/<name>.json.
func WriteJSON(v any, outdir, name string) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, name+".json"), b, 0644)
}

// WriteCurveCSV writes a premium curve into <outdir>/curve.csv.
func WriteCurveCSV(points []engine.CurvePoint, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "curve.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"spot", "premium"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{fmt.Sprintf("%.6f", p.Spot), fmt.Sprintf("%.8f", p.Premium)}
		_ = w.Write(row)
	}
	return nil
}
