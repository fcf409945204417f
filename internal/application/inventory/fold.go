package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza un término de búsqueda: minúsculas y sin acentos, para que
// "Cámara" y "camara" coincidan en los listados.
func Fold(s string) string {
	// El transformador se construye por llamada: transform.Chain mantiene
	// buffers internos y no es seguro compartirlo entre goroutines.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
