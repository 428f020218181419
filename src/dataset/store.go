package dataset

import (
	"strings"

	"algoexam/src/record"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

const tablePrefix = "exam_"

// Person is the table layout of one record. Seq keeps file order.
type Person struct {
	Seq       int64  `xorm:"pk autoincr 'seq'"`
	Id        int64  `xorm:"notnull index 'id'"`
	FirstName string `xorm:"varchar(255) notnull 'first_name'"`
	LastName  string `xorm:"varchar(255) notnull 'last_name'"`
}

func tableMapper() names.Mapper {
	return names.NewPrefixMapper(names.SnakeMapper{}, tablePrefix)
}

// Store keeps records in a SQL table through xorm.
type Store struct {
	engine *xorm.Engine
}

// ParseMetaURL splits a meta URL such as
// "mysql://user:pass@(127.0.0.1:3306)/exam" into driver and DSN.
func ParseMetaURL(uri string) (driver, dsn string, err error) {
	p := strings.Index(uri, "://")
	if p < 0 {
		return "", "", errors.Errorf("invalid meta URL %q: missing scheme", uri)
	}
	driver, dsn = uri[:p], uri[p+3:]
	switch driver {
	case "mysql":
		dsn = strings.Replace(dsn, "@(", "@tcp(", 1)
		if !strings.Contains(dsn, "?") {
			dsn += "?charset=utf8mb4"
		}
	default:
		return "", "", errors.Errorf("unsupported meta driver %q", driver)
	}
	return driver, dsn, nil
}

// OpenStore connects to the database named by metaURL.
func OpenStore(metaURL string) (*Store, error) {
	driver, dsn, err := ParseMetaURL(metaURL)
	if err != nil {
		return nil, err
	}
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create engine")
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, errors.Wrap(err, "ping")
	}
	engine.SetTableMapper(tableMapper())
	return &Store{engine: engine}, nil
}

func (s *Store) ShowSQL(show bool) {
	s.engine.ShowSQL(show)
}

// Load returns up to limit records in insertion order; limit <= 0 loads all.
func (s *Store) Load(limit int) ([]record.Record, error) {
	ok, err := s.engine.IsTableExist(new(Person))
	if err != nil {
		return nil, errors.Wrap(err, "check table")
	}
	if !ok {
		return nil, errors.Wrap(ErrNoData, "table does not exist")
	}

	var rows []Person
	q := s.engine.Asc("seq")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err = q.Find(&rows); err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	rs := make([]record.Record, len(rows))
	for i, row := range rows {
		rs[i] = record.Record{ID: row.Id, FirstName: row.FirstName, LastName: row.LastName}
	}
	logger.Debugf("loaded %d records from database", len(rs))
	return rs, nil
}

// Import creates the table if needed and appends records in batches of
// batch rows, each batch in its own transaction.
func (s *Store) Import(rs []record.Record, batch int) (int64, error) {
	if err := s.engine.Sync2(new(Person)); err != nil {
		return 0, errors.Wrap(err, "sync table")
	}
	if batch <= 0 {
		batch = 1000
	}
	var total int64
	for start := 0; start < len(rs); start += batch {
		end := start + batch
		if end > len(rs) {
			end = len(rs)
		}
		rows := make([]Person, 0, end-start)
		for _, r := range rs[start:end] {
			rows = append(rows, Person{Id: r.ID, FirstName: r.FirstName, LastName: r.LastName})
		}
		n, err := s.engine.Transaction(func(sess *xorm.Session) (interface{}, error) {
			return sess.Insert(&rows)
		})
		if err != nil {
			return total, errors.Wrapf(err, "insert rows %d-%d", start, end)
		}
		total += n.(int64)
		logger.Debugf("inserted rows %d-%d", start, end)
	}
	return total, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int64, error) {
	return s.engine.Count(new(Person))
}

// Truncate removes every stored record, keeping the table.
func (s *Store) Truncate() error {
	_, err := s.engine.Where("1 = 1").Delete(new(Person))
	return err
}

func (s *Store) Close() error {
	return s.engine.Close()
}
