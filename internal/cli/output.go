package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/rnumpy/ndarray"
)

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

func render(w io.Writer, a *ndarray.Array, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, a)
		return err
	case FormatJSON:
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatTable:
		return renderTable(w, a)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or table)", format)
	}
}

// renderTable prints rank-1 arrays as a single row and rank-2 arrays as a grid.
func renderTable(w io.Writer, a *ndarray.Array) error {
	var rows [][]string
	switch a.Rank() {
	case 0:
		v, err := a.Item()
		if err != nil {
			return err
		}
		rows = [][]string{{v.String()}}
	case 1:
		row, err := cells(a)
		if err != nil {
			return err
		}
		rows = [][]string{row}
	case 2:
		for i := 0; i < a.Len(); i++ {
			sub, err := a.At(i)
			if err != nil {
				return err
			}
			row, err := cells(sub)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
	default:
		return fmt.Errorf("%w: table output supports rank 0 to 2, got rank %d", ndarray.ErrShape, a.Rank())
	}

	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func cells(a *ndarray.Array) ([]string, error) {
	out := make([]string, 0, a.NumElements())
	for i := 0; i < a.Len(); i++ {
		v, err := a.Item(i)
		if err != nil {
			return nil, fmt.Errorf("table cell %d: %w", i, err)
		}
		out = append(out, v.String())
	}
	return out, nil
}
