package catalog

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteSummaryTable writes a plain-text catalog listing. An empty list
// prints a "no data available" note instead of a bare header.
func WriteSummaryTable(w io.Writer, bodies []Body, fetchedAt time.Time) {
	fmt.Fprintf(w, "Body catalog — %d bodies (fetched %s)\n\n",
		len(bodies), fetchedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	if len(bodies) == 0 {
		fmt.Fprintln(w, "no data available")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tRADIUS KM\tEFF TEMP\tDENSITY\tTILT")
	for _, b := range bodies {
		temp := "-"
		if k, ok := EffectiveTemp(b); ok {
			temp = fmt.Sprintf("%.0f K", k)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%s\t%.2f\t%.1f\n",
			b.DisplayName(), b.BodyType, b.MeanRadius, temp, b.Density, b.AxialTilt)
	}
	tw.Flush()
}

// FindBody locates a body by ID, name, or English name, case-insensitively.
func FindBody(bodies []Body, name string) (Body, bool) {
	for _, b := range bodies {
		if strings.EqualFold(b.ID, name) ||
			strings.EqualFold(b.Name, name) ||
			strings.EqualFold(b.EnglishName, name) {
			return b, true
		}
	}
	return Body{}, false
}
