package trilist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"triangle-rasterizer/internal/geom"
)

// Parse reads a triangle table from a CSV file and returns its triangles
// in file order.
func Parse(path string) ([]geom.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trilist: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses a triangle table. The first row is a header naming the
// columns x1,y1,x2,y2,x3,y3,color in any order; extra columns are ignored.
// name is used in error messages only.
func Read(r io.Reader, name string) ([]geom.Triangle, error) {
	records, err := ReadRecords(r, name)
	if err != nil {
		return nil, err
	}
	tris := make([]geom.Triangle, len(records))
	for i, rec := range records {
		tris[i] = rec.Triangle()
	}
	return tris, nil
}

// ReadRecords is Read without winding normalization.
func ReadRecords(r io.Reader, name string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("trilist: parse %s: %w", name, err)
	}

	pos, err := columnPositions(header)
	if err != nil {
		return nil, fmt.Errorf("trilist: parse %s: %w", name, err)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("trilist: parse %s line %d: %w", name, perr.Line, err)
			}
			return nil, fmt.Errorf("trilist: parse %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(row) {
			continue
		}

		rec, err := parseRow(row, pos)
		if err != nil {
			return nil, fmt.Errorf("trilist: parse %s line %d: %w", name, line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func columnPositions(header []string) ([7]int, error) {
	var pos [7]int
	for i, col := range columns {
		pos[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				pos[i] = j
				break
			}
		}
		if pos[i] < 0 {
			return pos, fmt.Errorf("%w: header missing column %q", ErrMalformed, col)
		}
	}
	return pos, nil
}

func parseRow(row []string, pos [7]int) (Record, error) {
	var coords [6]int
	for i := range coords {
		if pos[i] >= len(row) {
			return Record{}, fmt.Errorf("%w: %d fields, missing %s", ErrMalformed, len(row), columns[i])
		}
		v, err := strconv.Atoi(strings.TrimSpace(row[pos[i]]))
		if err != nil {
			return Record{}, fmt.Errorf("%w: %s: %v", ErrMalformed, columns[i], err)
		}
		coords[i] = v
	}

	if pos[6] >= len(row) {
		return Record{}, fmt.Errorf("%w: %d fields, missing color", ErrMalformed, len(row))
	}
	c, err := ParseColor(row[pos[6]])
	if err != nil {
		return Record{}, err
	}

	return Record{
		X1: coords[0], Y1: coords[1],
		X2: coords[2], Y2: coords[3],
		X3: coords[4], Y3: coords[5],
		Color: c,
	}, nil
}

// ParseColor accepts a decimal packed color ("16711680") or a hexadecimal
// one written as "0xFF0000" or "#FF0000".
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color: %v", ErrMalformed, err)
	}
	return uint32(v), nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
