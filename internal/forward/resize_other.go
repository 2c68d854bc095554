// ABOUTME: No-op resize propagation for platforms without SIGWINCH.
// ABOUTME: The child keeps its startup size.

//go:build !unix

package forward

import "os"

func (f *Forwarder) watchResize(*os.File) func() {
	return func() {}
}
