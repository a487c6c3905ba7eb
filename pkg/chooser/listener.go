package chooser

// Listener gets the absolute path of the selected file or directory. It is
// called at most once per dialog.
type Listener interface {
	OnSelect(path string)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(path string)

func (f ListenerFunc) OnSelect(path string) {
	f(path)
}

func isNilListener(l Listener) bool {
	if l == nil {
		return true
	}
	f, ok := l.(ListenerFunc)
	return ok && f == nil
}
