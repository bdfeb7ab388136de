// Released under an MIT license. See LICENSE.

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

package history

import "os"

func lock(*os.File, bool) error {
	return nil
}

func unlock(*os.File) error {
	return nil
}
