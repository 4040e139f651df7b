package auth

import "strings"

// AllowList is the set of privileged email addresses. Lookups ignore case
// and surrounding whitespace.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails []string) AllowList {
	l := AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		if e = normalize(e); e != "" {
			l.emails[e] = struct{}{}
		}
	}
	return l
}

func (l AllowList) Contains(email string) bool {
	_, ok := l.emails[normalize(email)]
	return ok
}

func (l AllowList) Len() int {
	return len(l.emails)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
