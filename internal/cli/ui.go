package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/network"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorGray   = lipgloss.Color("245") // headers
	colorDim    = lipgloss.Color("240") // borders
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// newTable returns a bordered table with the shared header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})
}

// renderBranches renders the branch table and the tree total.
func renderBranches(w io.Writer, snap network.Snapshot) {
	coords := make(map[string]geo.Coordinate, len(snap.Branches))
	for _, b := range snap.Branches {
		coords[b.Name] = b.Coord
	}

	t := newTable("Branch", "Coordinates", "Connected Branch", "Distance (km)", "Heading")
	for _, b := range snap.Branches {
		to, km, heading := "-", "-", "-"
		if b.ConnectedTo != "" {
			to = b.ConnectedTo
			km = strconv.FormatFloat(b.DistanceKm, 'f', 1, 64)
			heading = compass(geo.Bearing(coords[b.ConnectedTo], b.Coord))
		}
		t.Row(b.Name, b.Coord.String(), to, km, heading)
	}

	fmt.Fprintln(w, styleTitle.Render("Branch network"))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%s branches, %s edges, total %s km\n",
		styleNumber.Render(strconv.Itoa(len(snap.Branches))),
		styleNumber.Render(strconv.Itoa(len(snap.Edges))),
		styleNumber.Render(strconv.FormatFloat(snap.TotalWeight, 'f', 1, 64)))
}

// compassPoints are the eight principal winds, clockwise from north.
var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// compass renders a bearing as "123° SE".
func compass(deg float64) string {
	i := int((deg+22.5)/45) % len(compassPoints)
	return strconv.Itoa(int(deg+0.5)%360) + "° " + compassPoints[i]
}

// renderPlaces renders the gazetteer.
func renderPlaces(w io.Writer, entries []gazetteer.Entry) {
	t := newTable("Place", "Latitude", "Longitude")
	for _, e := range entries {
		t.Row(e.Name, strconv.FormatFloat(e.Lat, 'f', 4, 64), strconv.FormatFloat(e.Lon, 'f', 4, 64))
	}
	fmt.Fprintln(w, t.Render())
}
