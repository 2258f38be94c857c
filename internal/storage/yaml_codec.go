package storage

import (
	"bytes"
	"cdinv/internal/inventory"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const yamlVersion = 1

type inventoryFile struct {
	Version int                `yaml:"version"`
	Records []inventory.Record `yaml:"records"`
}

type YAMLCodec struct{}

func (YAMLCodec) Encode(w io.Writer, records []inventory.Record) error {
	file := inventoryFile{
		Version: yamlVersion,
		Records: records,
	}
	if file.Records == nil {
		file.Records = []inventory.Record{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	return enc.Close()
}

func (YAMLCodec) Decode(r io.Reader) ([]inventory.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []inventory.Record{}, nil
	}

	var file inventoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse inventory: %w", err)
	}
	if file.Version > yamlVersion {
		return nil, fmt.Errorf("unsupported inventory version %d", file.Version)
	}
	if file.Records == nil {
		file.Records = []inventory.Record{}
	}
	return file.Records, nil
}
