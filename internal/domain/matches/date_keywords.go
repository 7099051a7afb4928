package matches

import "strings"

// dateKeywords are the scheduling phrases intercepted in message bodies.
// A message containing one is treated as a date-scheduling attempt and held
// to the date-scheduling gate instead of the plain messaging gate.
var dateKeywords = []string{
	"let's meet",
	"lets meet",
	"meet up",
	"go on a date",
	"grab coffee",
	"grab dinner",
	"see you in person",
	"schedule a date",
}

// ContainsDateKeyword reports whether a message body reads like a
// date-scheduling attempt. Case-insensitive substring match.
func ContainsDateKeyword(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range dateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
