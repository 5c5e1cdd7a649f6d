package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/popgrowth/internal/logistic"
)

type PointData struct {
	T int      `json:"t"`
	N *float64 `json:"n"`
}

type ExportData struct {
	Params    logistic.Params `json:"params"`
	A         float64         `json:"a"`
	Steps     int             `json:"steps"`
	Undefined int             `json:"undefined"`
	Points    []PointData     `json:"points"`
}

// NewExportData converts a series to its JSON shape; undefined points carry
// a null N.
func NewExportData(p logistic.Params, series logistic.Series) ExportData {
	data := ExportData{
		Params:    p,
		A:         p.A(),
		Steps:     len(series),
		Undefined: series.Undefined(),
		Points:    make([]PointData, len(series)),
	}
	for i, pt := range series {
		data.Points[i].T = pt.T
		if pt.Defined {
			n := pt.N
			data.Points[i].N = &n
		}
	}
	return data
}

func WriteJSON(w io.Writer, p logistic.Params, series logistic.Series) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(p, series))
}
