package chat

import "strings"

// turkishFold maps Turkish (and circumflexed) letters to their Latin base form.
// Upper-case forms are folded before lower-casing so "İ" never becomes "i̇".
var turkishFold = strings.NewReplacer(
	"İ", "i", "I", "i", "ı", "i",
	"Ğ", "g", "ğ", "g",
	"Ü", "u", "ü", "u",
	"Ş", "s", "ş", "s",
	"Ö", "o", "ö", "o",
	"Ç", "c", "ç", "c",
	"Â", "a", "â", "a",
	"Î", "i", "î", "i",
	"Û", "u", "û", "u",
	"\u0307", "",
)

// Normalize lower-cases s and folds accents so keyword patterns can be plain ASCII.
func Normalize(s string) string {
	return strings.ToLower(turkishFold.Replace(s))
}
