package core

import (
	"encoding/json"
	"io"
)

// MarshalReport pretty-prints a report as JSON for pipelines.
func MarshalReport(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// UnmarshalReport decodes report JSON, useful for ingestion tests.
func UnmarshalReport(r io.Reader) (Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}
