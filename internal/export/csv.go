package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/popgrowth/internal/logistic"
)

// FormatN renders N with three decimals, or "" when undefined.
func FormatN(pt logistic.Point) string {
	if !pt.Defined {
		return ""
	}
	return strconv.FormatFloat(pt.N, 'f', 3, 64)
}

func WriteCSV(out io.Writer, series logistic.Series) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"t", "N"}); err != nil {
		return err
	}
	for _, pt := range series {
		if err := w.Write([]string{strconv.Itoa(pt.T), FormatN(pt)}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
