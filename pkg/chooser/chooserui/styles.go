package chooserui

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	BorderColor    tcell.Color
	TitleColor     tcell.Color
	LocationColor  tcell.Color
	DirectoryColor tcell.Color
	SizeColor      tcell.Color
	EmptyColor     tcell.Color
}

var Style = Styles{
	BorderColor:    tcell.ColorCornflowerBlue,
	TitleColor:     tcell.ColorGhostWhite,
	LocationColor:  tcell.ColorLightGray,
	DirectoryColor: tcell.ColorWhite,
	SizeColor:      tcell.ColorGray,
	EmptyColor:     tcell.ColorDarkGray,
}

var fileColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"js":   tcell.ColorYellow,
	"html": tcell.ColorOrangeRed,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"pdf":  tcell.ColorIndianRed,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"webp": tcell.ColorMediumPurple,
	"mp3":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"mov":  tcell.ColorLightSalmon,
	"apk":  tcell.ColorGreen,
	"zip":  tcell.ColorOrange,
	"log":  tcell.ColorRosyBrown,
	"doc":  tcell.ColorBlue,
	"docx": tcell.ColorBlue,
	"xls":  tcell.ColorGreen,
	"xlsx": tcell.ColorGreen,
}

// FileColor picks a text color for a file name by its extension.
// Extensions are matched case-insensitively.
func FileColor(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
