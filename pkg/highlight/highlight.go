// Package highlight writes syntax highlighted text to a terminal.
package highlight

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
)

const DefaultStyle = "dracula"

var getLexer = lexers.Get

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

var getFormatter = func() chroma.Formatter {
	return formatters.TTY256
}

// Write tokenises text with the named lexer and writes it to w using
// 256-color ANSI escapes. Unknown lexers and styles fall back to plain ones.
func Write(w io.Writer, text, lexerName, styleName string) error {
	lexer := getLexer(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return errors.Wrapf(err, "failed to tokenise %s text", lexerName)
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}
	return errors.WithStack(getFormatter().Format(w, style, iterator))
}

func YAML(w io.Writer, text string) error {
	return Write(w, text, "yaml", DefaultStyle)
}
