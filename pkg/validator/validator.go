package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	dniRegex   = regexp.MustCompile(`^[0-9]{7,10}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateDNI(dni string) bool {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, dni)

	return dniRegex.MatchString(clean)
}

func ValidateDate(date string) bool {
	return dateRegex.MatchString(date)
}

func ValidateTime(t string) bool {
	return timeRegex.MatchString(t)
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateNamePart(name string) bool {
	if len(name) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

func FormatName(name string) string {
	if len(name) == 0 {
		return ""
	}

	parts := strings.Fields(name)
	for i, part := range parts {
		if strings.Contains(part, "-") {
			subparts := strings.Split(part, "-")
			for j, subpart := range subparts {
				if len(subpart) > 0 {
					subparts[j] = strings.ToUpper(subpart[:1]) + strings.ToLower(subpart[1:])
				}
			}
			parts[i] = strings.Join(subparts, "-")
		} else if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}

	return strings.Join(parts, " ")
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
