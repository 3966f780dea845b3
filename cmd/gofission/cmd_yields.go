package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nucastro/gofission/channels"
	"github.com/nucastro/gofission/histo"
	"github.com/nucastro/gofission/yieldplot"
)

var (
	yieldsCharge bool
	yieldsPlot   string
)

var yieldsCmd = &cobra.Command{
	Use:   "yields FILE...",
	Short: "Fragment mass (or charge) yields of event files",
	Long: `Writes the normalized fragment yields of each event file as JSON, and
optionally plots them all together.

Example:
  gofission yields --plot yields.png Z100_A260_sf_E0MeV.lmd Z100_A270_sf_E0MeV.lmd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runYields,
}

func init() {
	yieldsCmd.Flags().BoolVar(&yieldsCharge, "charge", false, "charge yields instead of mass yields")
	yieldsCmd.Flags().StringVar(&yieldsPlot, "plot", "", "plot file (png, svg, pdf)")
}

func runYields(cmd *cobra.Command, args []string) (err error) {
	series := make([]yieldplot.Series, 0, len(args))
	out := make(map[string]*histo.Data, len(args))
	for i, name := range args {
		C, err := channels.CountFile(name)
		if err != nil {
			return err
		}
		var d *histo.Data
		if yieldsCharge {
			d = C.ChargeYields()
		} else {
			d = C.MassYields()
		}
		label := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		if _, ok := out[label]; ok {
			label = fmt.Sprintf("%s#%d", label, i)
		}
		out[label] = d
		series = append(series, yieldplot.Series{Name: label, Data: d})
	}
	if yieldsPlot != "" {
		xlabel := "A"
		title := "Fragment mass yields"
		if yieldsCharge {
			xlabel = "Z"
			title = "Fragment charge yields"
		}
		if err := yieldplot.Yields(series, title, xlabel, yieldsPlot); err != nil {
			return err
		}
	}
	w, closer, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput(closer, &err)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
