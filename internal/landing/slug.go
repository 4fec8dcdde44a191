package landing

import "strings"

var accentFolder = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a", "á", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i", "í", "i",
	"ô", "o", "ö", "o", "ó", "o",
	"ù", "u", "û", "u", "ü", "u", "ú", "u",
	"ç", "c", "ñ", "n", "ß", "ss",
)

// Slug joins parts into a lowercase URL-safe token: accents folded, runs of
// non-alphanumerics collapsed into single dashes.
func Slug(parts ...string) string {
	joined := accentFolder.Replace(strings.ToLower(strings.Join(parts, "-")))

	var b strings.Builder
	dash := true // trim leading dashes
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
