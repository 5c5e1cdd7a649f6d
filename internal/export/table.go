package export

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/popgrowth/internal/logistic"
)

// Undefined is the table cell for points without a value.
const Undefined = "—"

// CellN is FormatN for display, with a visible marker for undefined points.
func CellN(pt logistic.Point) string {
	if !pt.Defined {
		return Undefined
	}
	return FormatN(pt)
}

func WriteTable(out io.Writer, series logistic.Series) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "t\tN\t")
	for _, pt := range series {
		fmt.Fprintf(w, "%d\t%s\t\n", pt.T, CellN(pt))
	}
	return w.Flush()
}
