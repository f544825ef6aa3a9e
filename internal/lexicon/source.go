// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// sourceEncodings maps the accepted encoding names of a delimited source to
// their decoders. UTF-8 sources need no decoder.
var sourceEncodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin9":       charmap.ISO8859_15,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"macintosh":    charmap.Macintosh,
}

// SourceEncoding resolves the character encoding of a delimited source.
// "" and "utf-8" return nil, meaning the bytes are read as they are.
func SourceEncoding(name string) (encoding.Encoding, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "utf-8", "utf8":
		return nil, nil
	default:
		if enc, ok := sourceEncodings[n]; ok {
			return enc, nil
		}
		return nil, fmt.Errorf("unsupported lexicon source encoding %q", name)
	}
}

// ReadTable reads a raw lexicon table. The file extension selects the
// reader: .xlsx/.xlsm/.xltx are parsed as spreadsheets (sheet names the
// worksheet, empty means the first one), .csv as comma-separated values,
// .tsv and .txt as tab-separated values. Binary workbooks (.xlsb, .xls)
// are not supported; export them to .xlsx or use the tab-separated
// distribution of the lexicon instead.
//
// enc decodes delimited sources into UTF-8; nil reads them unchanged.
// Spreadsheets are always UTF-8 and ignore it.
func ReadTable(path, sheet string, enc encoding.Encoding) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx":
		return readSpreadsheet(path, sheet)
	case ".csv":
		return readDelimited(path, ',', enc)
	case ".tsv", ".txt":
		return readDelimited(path, '\t', enc)
	default:
		return nil, fmt.Errorf("unsupported lexicon source format %q", ext)
	}
}

func readSpreadsheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readDelimited(path string, sep rune, enc encoding.Encoding) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening table: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if enc != nil {
		src = transform.NewReader(f, enc.NewDecoder())
	}

	if sep == '\t' {
		return readTabbed(src)
	}

	r := csv.NewReader(src)
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// readTabbed splits lines on tabs without quote handling; the text export
// of Lexique carries bare quotes inside fields.
func readTabbed(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning table: %w", err)
	}
	return rows, nil
}
