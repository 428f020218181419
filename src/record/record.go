package record

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidField is returned when a sort key is not one of the known fields.
var ErrInvalidField = errors.New("invalid sort field")

// Record is one loaded row. Records are treated as values and never modified
// after loading.
type Record struct {
	ID        int64
	FirstName string
	LastName  string
}

func (r Record) String() string {
	return fmt.Sprintf("%d | %s %s", r.ID, r.FirstName, r.LastName)
}

// Field selects the Record attribute that drives comparison.
type Field int

const (
	FieldID Field = iota
	FieldFirstName
	FieldLastName
)

var fieldNames = [...]string{"id", "firstName", "lastName"}

// Fields lists the sortable fields in menu order.
func Fields() []Field {
	return []Field{FieldID, FieldFirstName, FieldLastName}
}

func (f Field) Valid() bool {
	return f >= FieldID && f <= FieldLastName
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField maps a column name to a Field, ignoring case, so "ID",
// "FirstName" and "lastname" are all accepted.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for i, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return Field(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidField, "%q", name)
}

// Compare orders a and b by field f, returning -1, 0 or +1. Names compare
// byte-wise exactly as stored. An invalid field reports every pair as equal.
func Compare(a, b Record, f Field) int {
	switch f {
	case FieldID:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	case FieldFirstName:
		return strings.Compare(a.FirstName, b.FirstName)
	case FieldLastName:
		return strings.Compare(a.LastName, b.LastName)
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b Record, f Field) bool {
	return Compare(a, b, f) < 0
}
