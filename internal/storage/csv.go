package storage

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// SaveCSV writes a slice of tagged row structs as a CSV artifact, atomically.
func (fs *FileStorage) SaveCSV(name string, rows any) error {
	data, err := gocsv.MarshalString(rows)
	if err != nil {
		return fmt.Errorf("[Storage] failed to marshal %s: %w", name, err)
	}
	return fs.writeAtomic(name, []byte(data))
}

// LoadCSV reads a CSV artifact into a pointer to a slice of tagged row
// structs.
func (fs *FileStorage) LoadCSV(name string, rows any) error {
	f, err := os.Open(fs.LocalPath(name))
	if err != nil {
		return fmt.Errorf("[Storage] failed to open %s: %w", name, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, rows); err != nil {
		return fmt.Errorf("[Storage] failed to parse %s: %w", name, err)
	}
	return nil
}
