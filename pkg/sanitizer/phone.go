package sanitizer

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var rePhoneLike = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)

// SanitizePhone returns phone in E.164 form when it parses as a number of
// defaultRegion (or carries its own +country prefix). Anything else is
// returned trimmed and otherwise untouched.
func SanitizePhone(phone, defaultRegion string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" || !rePhoneLike.MatchString(phone) {
		return phone
	}

	parsed, err := phonenumbers.Parse(phone, defaultRegion)
	if err != nil {
		return phone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
