// cmds.go -- commands abstraction
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
	"log/slog"
	"sort"
)

type command interface {
	run(args []string, opt *Option) error
}

// commands register themselves from init(); main is single threaded
// after that, so the table needs no lock.
var cmds = make(map[string]command)

func registerCommand(nm string, cmd command) {
	if _, ok := cmds[nm]; ok {
		panic(fmt.Sprintf("%s already registered", nm))
	}
	cmds[nm] = cmd
}

func runCommand(args []string, o *Option) error {
	nm := args[0]

	cmd, ok := cmds[nm]
	if !ok {
		return fmt.Errorf("unknown command %s (have %v)", nm, commandNames())
	}

	return cmd.run(args, o)
}

func commandNames() []string {
	v := make([]string, 0, len(cmds))
	for nm := range cmds {
		v = append(v, nm)
	}
	sort.Strings(v)
	return v
}

type Option struct {
	verbose bool
	log     *slog.Logger
}
