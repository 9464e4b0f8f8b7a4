package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/harmonic/internal/dynamo"
)

// Header returns the CSV column names for res:
// index, time, then x_<label>, v_<label> per trajectory.
func Header(res *dynamo.Result) []string {
	header := []string{"index", "time"}
	for _, tr := range res.Trajectories() {
		name := strings.ToLower(tr.Label)
		header = append(header, "x_"+name, "v_"+name)
	}
	return header
}

// CSV writes one row per grid index with the time and every trajectory's
// sample.
func CSV(w io.Writer, res *dynamo.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(res)); err != nil {
		return err
	}

	trs := res.Trajectories()
	row := make([]string, 0, 2+2*len(trs))
	for i, t := range res.Times {
		row = append(row[:0], strconv.Itoa(i), formatFloat(t))
		for _, tr := range trs {
			s := tr.Samples[i]
			row = append(row, formatFloat(s.X), formatFloat(s.V))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
