// Package support holds abstract test cases shared by the sample suites.
package support

import (
	"errors"
	"sort"

	"xrun/xunit"
)

// Database is an in-memory table standing in for a real connection.
type Database struct {
	rows map[string]int
	open bool
}

// Put stores value under key.
func (db *Database) Put(key string, value int) {
	db.rows[key] = value
}

// Get returns the value stored under key.
func (db *Database) Get(key string) (int, bool) {
	v, ok := db.rows[key]
	return v, ok
}

// Keys returns the stored keys in sorted order.
func (db *Database) Keys() []string {
	keys := make([]string, 0, len(db.rows))
	for k := range db.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DatabaseCase is embedded by fixtures that need a fresh database per type.
type DatabaseCase struct {
	DB *Database
}

// DatabaseFixture is satisfied by every fixture embedding DatabaseCase.
type DatabaseFixture interface {
	Database() *DatabaseCase
}

func (c *DatabaseCase) Database() *DatabaseCase { return c }

func (c *DatabaseCase) SetUp() error {
	c.DB = &Database{rows: make(map[string]int), open: true}
	return nil
}

func (c *DatabaseCase) TearDown() error {
	if c.DB == nil || !c.DB.open {
		return errors.New("database was never opened")
	}
	c.DB.open = false
	return nil
}

var DatabaseCaseType = xunit.Register(xunit.AbstractCase("tests.support.DatabaseCase",
	xunit.Bind(xunit.SetUpMethod, func(f DatabaseFixture) error { return f.Database().SetUp() }),
	xunit.Bind(xunit.TearDownMethod, func(f DatabaseFixture) error { return f.Database().TearDown() }),
))
