package sndbank

import (
	_ "embed"
	"strings"

	"github.com/samber/lo"
)

// names.txt carries alias names collected from shipped sound bank sources.
// Hashing them up front gives a side index for recovering a human name
// from a bare hash.
//
//go:embed names.txt
var names string

var nameByHash map[uint32]string

func init() {
	namesSlice := lo.Filter(
		strings.Split(names, "\n"),
		func(line string, _ int) bool {
			return len(strings.TrimSpace(line)) > 0
		},
	)

	nameByHash = lo.SliceToMap(
		namesSlice,
		func(name string) (uint32, string) {
			return HashName(name), name
		},
	)
}

// KnownName recovers the alias name behind a hash if the name list carries
// it.
func KnownName(hash uint32) (string, bool) {
	name, ok := nameByHash[hash]
	return name, ok
}
