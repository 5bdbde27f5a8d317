package encoding

// LinearBarcode is the content and caption of a Code128 barcode.
type LinearBarcode struct {
	Content string
	Display string
}

// FormatLinear derives the Code128 content and its grouped caption from a
// tracking number. Captions of 13 or more characters are grouped 2/4/4/rest,
// e.g. "MZ 3170 8295 1GB"; shorter ones are shown as cleaned.
func FormatLinear(tracking string) LinearBarcode {
	clean := CleanCode(tracking)
	return LinearBarcode{Content: clean, Display: groupTracking(clean)}
}

// groupTracking counts and slices runes so multi-byte input stays valid UTF-8.
func groupTracking(clean string) string {
	r := []rune(clean)
	if len(r) < 13 {
		return clean
	}
	return string(r[:2]) + " " + string(r[2:6]) + " " + string(r[6:10]) + " " + string(r[10:])
}
