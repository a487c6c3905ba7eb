package chooser

// Icon is a glyph drawn next to an entry or on a button.
type Icon string

const (
	DefaultFileIcon              Icon = "📄"
	DefaultDirectoryIcon         Icon = "📁"
	DefaultPreviousDirectoryIcon Icon = "⬆"
)

func (i Icon) String() string {
	return string(i)
}

func iconOrDefault(icon, def Icon) Icon {
	if icon == "" {
		return def
	}
	return icon
}
