//go:build unix

package main

import (
	"bytes"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// platform describes the host for the REPL banner.
func platform() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// If uname failed, we don't have anything else to try.
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	s, r, m := uname.Sysname[:], uname.Release[:], uname.Machine[:]
	return fmt.Sprintf("%s %s %s", bytes.Trim(s, "\x00"), bytes.Trim(r, "\x00"), bytes.Trim(m, "\x00"))
}
