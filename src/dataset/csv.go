package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"algoexam/src/record"
	"algoexam/src/utils"

	"github.com/pkg/errors"
)

var logger = utils.GetLogger("dataset")

// ErrNoData is returned when the source could not be read at all.
var ErrNoData = errors.New("no data")

var columns = [...]string{"ID", "FirstName", "LastName"}

// LoadCSV reads every record from the CSV file at path.
func LoadCSV(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNoData, "file %s not found", path)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	rs, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	logger.Debugf("loaded %d records from %s", len(rs), path)
	return rs, nil
}

// ReadCSV parses a CSV stream whose header names the ID, FirstName and
// LastName columns in any order. Other columns are ignored.
func ReadCSV(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrNoData, "empty file")
	}
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	var idx [len(columns)]int
	for i, name := range columns {
		idx[i] = -1
		for j, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), name) {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, errors.Errorf("header: missing column %s", name)
		}
	}

	var rs []record.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		for _, i := range idx {
			if i >= len(row) {
				return nil, errors.Errorf("line %d: expected at least %d fields, got %d", line, i+1, len(row))
			}
		}
		id, err := strconv.ParseInt(strings.TrimSpace(row[idx[0]]), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: bad ID", line)
		}
		rs = append(rs, record.Record{
			ID:        id,
			FirstName: row[idx[1]],
			LastName:  row[idx[2]],
		})
	}
	return rs, nil
}
