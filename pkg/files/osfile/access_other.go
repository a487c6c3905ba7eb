//go:build !unix

package osfile

import "github.com/spf13/afero"

func accessRead(name string) bool {
	fsys := afero.NewOsFs()
	info, err := fsys.Stat(name)
	if err != nil || !(info.IsDir() || info.Mode().IsRegular()) {
		return false
	}
	return canOpen(fsys, name)
}
