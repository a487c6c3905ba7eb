package chooser

import (
	"slices"
)

// Config is the fixed set of choices a dialog is built with. It is also the
// arguments bundle persisted across restarts.
type Config struct {
	Mode                  Mode     `yaml:"chooser_type" validate:"required,oneof=file directory"`
	Title                 string   `yaml:"title,omitempty"`
	FileFormats           []string `yaml:"file_formats,omitempty"`
	FileIcon              Icon     `yaml:"file_icon" validate:"required"`
	DirectoryIcon         Icon     `yaml:"directory_icon" validate:"required"`
	PreviousDirectoryIcon Icon     `yaml:"previous_directory_icon" validate:"required"`
}

// DefaultConfig returns a config for mode with the built-in icons.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:                  mode,
		FileIcon:              DefaultFileIcon,
		DirectoryIcon:         DefaultDirectoryIcon,
		PreviousDirectoryIcon: DefaultPreviousDirectoryIcon,
	}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	c.FileFormats = slices.Clone(c.FileFormats)
	return c
}

func (c Config) HasTitle() bool {
	return c.Title != ""
}

func (c Config) Filter() Filter {
	return Filter{
		ShowFiles:   c.Mode == FileChooser,
		FileFormats: c.FileFormats,
	}
}

// withDefaultIcons fills in icons left empty, e.g. by a hand-edited bundle.
func (c Config) withDefaultIcons() Config {
	c.FileIcon = iconOrDefault(c.FileIcon, DefaultFileIcon)
	c.DirectoryIcon = iconOrDefault(c.DirectoryIcon, DefaultDirectoryIcon)
	c.PreviousDirectoryIcon = iconOrDefault(c.PreviousDirectoryIcon, DefaultPreviousDirectoryIcon)
	return c
}
