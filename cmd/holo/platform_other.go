//go:build !unix

package main

import "runtime"

// platform describes the host for the REPL banner.
func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
