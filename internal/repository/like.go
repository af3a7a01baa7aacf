package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike lower-cases s and escapes LIKE wildcards so it matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(s))
}
