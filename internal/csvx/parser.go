// Package csvx parses the raw CSV text of a campaign-log export into a
// grid of trimmed cells. The scanner is deliberately permissive: real
// exports arrive with ragged rows, stray blank lines and occasionally an
// unterminated quote, all of which encoding/csv would reject outright.
package csvx

import "strings"

// Parse scans text left to right into rows of trimmed string cells.
//
// A quote toggles quoted mode; two consecutive quotes inside a quoted
// field collapse to one literal quote. Commas and line terminators only
// split when outside quotes. \r\n, \n and bare \r all end a row. A line
// terminator (or EOF) with nothing accumulated and no fields pushed does
// not emit an empty row, so blank lines vanish. An unterminated quote at
// EOF absorbs the remaining text into the final field.
func Parse(text string) [][]string {
	var grid [][]string
	var row []string
	var field strings.Builder

	endField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	endRow := func() {
		if field.Len() == 0 && len(row) == 0 {
			return
		}
		endField()
		grid = append(grid, row)
		row = nil
	}

	inQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			endField()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()
		default:
			field.WriteByte(c)
		}
	}
	endRow()
	return grid
}
