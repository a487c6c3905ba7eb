//go:build unix

package osfile

import "golang.org/x/sys/unix"

var unixAccess = unix.Access

// accessRead checks the read permission bit without opening name.
func accessRead(name string) bool {
	return unixAccess(name, unix.R_OK) == nil
}
