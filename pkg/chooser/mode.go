package chooser

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode decides whether the dialog ends by picking a file or a directory.
type Mode string

const (
	FileChooser      Mode = "file"
	DirectoryChooser Mode = "directory"
)

func (m Mode) IsValid() bool {
	return m == FileChooser || m == DirectoryChooser
}

func (m Mode) String() string {
	return string(m)
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file", "f":
		return FileChooser, nil
	case "directory", "dir", "d":
		return DirectoryChooser, nil
	default:
		return "", errors.Errorf("unknown chooser mode %q", s)
	}
}
