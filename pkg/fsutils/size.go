package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText returns a human readable size rounded to the nearest unit.
// TB is the largest unit.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}
	exp := 1
	div := int64(unit)
	for size/div >= unit && exp < len(sizeUnits)-1 {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
