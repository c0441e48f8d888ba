package nfa

import "github.com/coregx/regexlite/rxerr"

// ErrNoMatch is an InternalError sentinel with the message "no match
// found". The matcher does not return it: a start position with no
// accepting path is reported by matchAt's false ok value, and FindAll
// returns a nil slice when nothing matches.
var ErrNoMatch = rxerr.NewInternalError("no match found")
