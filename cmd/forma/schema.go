package main

import (
	"fmt"

	"github.com/madeso/forma"
)

// record is the dynamic per-node value the CLI renders against: whatever
// came out of json.Unmarshal into map[string]any, nested maps included.
type record = map[string]interface{}

// buildDefinition turns a schemaConfig into a forma.Definition without
// reflection: every attribute/bool/list name becomes a closure indexing
// into the record by that key, and list children recurse through the same
// builder against the nested schemaConfig.
func buildDefinition(schema schemaConfig) *forma.Definition[record] {
	def := forma.NewDefinition[record]()

	for _, name := range schema.Attributes {
		name := name
		def.AddVar(name, func(r record) string {
			v, ok := r[name]
			if !ok || v == nil {
				return ""
			}
			return fmt.Sprint(v)
		})
	}

	for _, name := range schema.Bools {
		name := name
		def.AddBool(name, func(r record) bool {
			v, ok := r[name].(bool)
			return ok && v
		})
	}

	for name, childSchema := range schema.Lists {
		name := name
		forma.AddList(def, name, func(r record) []record {
			raw, ok := r[name].([]interface{})
			if !ok {
				return nil
			}
			children := make([]record, 0, len(raw))
			for _, item := range raw {
				if child, ok := item.(record); ok {
					children = append(children, child)
				}
			}
			return children
		}, buildDefinition(childSchema))
	}

	return def
}

// enabledFunctions filters forma.DefaultFunctions() down to names, or
// returns the full set unfiltered when names is empty.
func enabledFunctions(names []string) forma.FuncRegistry {
	all := forma.DefaultFunctions()
	if len(names) == 0 {
		return all
	}
	out := forma.FuncRegistry{}
	for _, name := range names {
		if fn, ok := all[name]; ok {
			out[name] = fn
		}
	}
	return out
}
