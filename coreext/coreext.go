// Package coreext registers every extension shipped with holo. Import it for
// side effects before creating any actor.
package coreext

import (
	// importing for side effects
	_ "github.com/hololang/holo/coreext/arith"
	_ "github.com/hololang/holo/coreext/text"
)
