package main

import (
	"fmt"
	"os"

	// Packages
	schema "github.com/mutablelogic/go-apiframe/pkg/schema"
	uitable "github.com/mutablelogic/go-apiframe/pkg/ui/table"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Print writes a value to stdout as indented JSON, or YAML with --yaml
func (g *Globals) Print(v any) error {
	if g.Yaml {
		if r, ok := v.(*schema.Response); ok {
			v = r.Value()
		}
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	_, err := fmt.Println(v)
	return err
}

// PrintTable writes a table to stdout
func (g *Globals) PrintTable(data uitable.TableData) error {
	return uitable.Write(os.Stdout, data)
}
