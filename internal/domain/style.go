package domain

// StyleToken names a presentation style for a category badge.
type StyleToken string

const (
	StyleRed    StyleToken = "red"
	StyleGreen  StyleToken = "green"
	StylePurple StyleToken = "purple"
	StyleGray   StyleToken = "gray"

	// StyleDefault is used for anything missing from the table.
	StyleDefault StyleToken = "indigo"
)

var categoryStyles = map[Category]StyleToken{
	CategoryWork:     StyleRed,
	CategoryPrivate:  StyleGreen,
	CategoryShopping: StylePurple,
	CategoryOther:    StyleGray,
}

// CategoryStyle returns the style token for c. It never fails: categories
// without an entry, the all sentinel included, get StyleDefault.
func CategoryStyle(c Category) StyleToken {
	if tok, ok := categoryStyles[c]; ok {
		return tok
	}
	return StyleDefault
}
