package rig

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// MappingTable maps source bone names to target bone names. An empty value
// and a missing key mean the same thing: the bone is intentionally
// unmapped and its animation tracks are dropped on retarget.
//
// Persisted as a flat JSON object literal, keys = source names, values =
// target names or "" for unmapped. No versioning, no nesting.
type MappingTable map[string]string

// Resolve returns the target bone for a source bone. The second return is
// false when the source is unmapped, whether by empty value or missing key.
func (m MappingTable) Resolve(source string) (string, bool) {
	target := m[source]
	return target, target != ""
}

// Set binds one source bone to a target bone.
func (m MappingTable) Set(source, target string) {
	m[source] = target
}

// ClearTarget marks a source bone as intentionally unmapped while keeping
// its row in the table.
func (m MappingTable) ClearTarget(source string) {
	m[source] = ""
}

// SortedSources returns the table's source names in skeleton order where
// the order is known, with any extra persisted keys sorted after them.
func (m MappingTable) SortedSources(skeletonOrder []string) []string {
	seen := make(map[string]bool, len(m))
	out := make([]string, 0, len(m))
	for _, s := range skeletonOrder {
		if _, ok := m[s]; ok && !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	var extras []string
	for s := range m {
		if !seen[s] {
			extras = append(extras, s)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}

// LoadMappingTable reads a mapping file. On any failure the error is
// returned and no table is produced, so the caller's current table stays
// untouched.
func LoadMappingTable(path string) (MappingTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var table MappingTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	if table == nil {
		table = MappingTable{}
	}
	return table, nil
}

// Save writes the table in the same flat shape LoadMappingTable reads.
func (m MappingTable) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	return nil
}
