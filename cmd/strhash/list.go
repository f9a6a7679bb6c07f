// list.go -- 'list' command implementation
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"slices"

	"github.com/opencoff/go-strhash"
)

type listCommand struct{}

func init() {
	m := listCommand{}
	registerCommand("list", &m)
}

func (m *listCommand) run(args []string, opt *Option) error {
	if len(args) > 1 {
		return fmt.Errorf("list: unexpected args %v", args[1:])
	}

	for _, nm := range strhash.DefaultRegistry().Names() {
		mark := ""
		if slices.Contains(strhash.DefaultVariants, nm) {
			mark = " (default)"
		}
		fmt.Printf("%s%s\n", nm, mark)
	}
	return nil
}
