package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"kastelo.dev/peerscore"
)

const csvFileName = "final.csv"

func writeCSV(dir string, s *peerscore.Summary) (string, error) {
	path := filepath.Join(dir, csvFileName)
	fd, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	cw := csv.NewWriter(fd)
	if err := cw.Write(s.Header()); err != nil {
		return "", err
	}
	for i := range s.Rows {
		vals := s.Values(i)
		rec := make([]string, len(vals))
		for j, v := range vals {
			switch v := v.(type) {
			case string:
				rec[j] = v
			case int:
				rec[j] = strconv.Itoa(v)
			case float64:
				rec[j] = strconv.FormatFloat(v, 'f', 2, 64)
			}
		}
		if err := cw.Write(rec); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return path, fd.Close()
}
