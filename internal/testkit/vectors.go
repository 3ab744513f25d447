// Package testkit loads the keyless conformance vectors shared by the
// package tests and the vector generator.
//
// It must not import other packages of this module: their internal tests
// import it.
package testkit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Vector is one conformance case.
//
// SS58 maps a decimal network format (e.g. "5335") to the expected text address.
type Vector struct {
	Name        string            `json:"name"`
	AddressType string            `json:"addressType"`
	AppAgentID  *uint32           `json:"appAgentId"`
	TAID        *uint32           `json:"taId"`
	AddressName *string           `json:"addressName"`
	AccountID   string            `json:"accountId"`
	SS58        map[string]string `json:"ss58"`
	CID         string            `json:"cid"`
}

type File struct {
	Suite   string   `json:"suite"`
	Hash    string   `json:"hash"`
	Vectors []Vector `json:"vectors"`
}

// VectorsPath returns the absolute path of the conformance vectors file.
func VectorsPath() string {
	_, self, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(self), "..", "..", "testdata", "conformance", "keyless", "vectors.json")
}

// ReadVectors parses a vectors file.
func ReadVectors(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(b, &f); err != nil {
		return f, err
	}
	return f, nil
}

// LoadVectors reads the repository vectors, failing the test on error.
func LoadVectors(t *testing.T) []Vector {
	t.Helper()
	f, err := ReadVectors(VectorsPath())
	if err != nil {
		t.Fatalf("load conformance vectors: %v", err)
	}
	if len(f.Vectors) == 0 {
		t.Fatalf("no conformance vectors")
	}
	return f.Vectors
}
