package log

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Output is where every Print function writes.
var Output io.Writer = color.Output

// Available text styles
var (
	Bold    = color.New(color.Bold).SprintFunc()
	Blue    = color.New(color.FgBlue).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()
	Red     = color.New(color.FgRed).SprintFunc()
)

// PrintSection prints a section header such as "/** Mean **/"
func PrintSection(title string) {
	fmt.Fprintln(Output, Bold("/** "+title+" **/"))
}

// Print formats and prints a message with the given colorFunc for highlighted text
func Print(prefix, format string, colorFunc func(...interface{}) string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(Output, Bold(prefix, colorFunc(msg)))
}

// PrintPair prints a key-value pair with the key in bold and value in the specified color
func PrintPair(key, value string, colorFunc func(...interface{}) string) {
	fmt.Fprintln(Output, Bold(key+": ", colorFunc(value)))
}

// PrintValue prints a simple value with the given color
func PrintValue(label string, value interface{}, colorFunc func(...interface{}) string) {
	fmt.Fprintln(Output, Bold(label+": ", colorFunc(fmt.Sprintf("%v", value))))
}

// PrintFloat prints a float value with the given precision and unit
func PrintFloat(label string, value float64, precision int, unit string, colorFunc func(...interface{}) string) {
	formatted := FormatFloat(value, precision)
	if unit != "" {
		formatted += " " + unit
	}
	fmt.Fprintln(Output, Bold(label+": ", colorFunc(formatted)))
}

// FormatFloat renders value with a fixed number of decimals.
func FormatFloat(value float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return fmt.Sprintf("%.*f", precision, value)
}

// PrintTable renders rows under headers as a borderless, left-aligned table.
func PrintTable(headers []string, rows [][]string) error {
	table := tablewriter.NewTable(Output,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)

	table.Header(headers)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
