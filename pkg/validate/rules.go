package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a named check of a credential.
// Test returns true when the argument breaks the rule, and Hint tells how to fix it.
type Rule[A any] struct {
	Test func(A) bool
	Hint string
}

// Rules is a rule table, indexed by rule name.
type Rules[A any] map[string]Rule[A]

// Pair is the argument of the rules that look at the login and the password together.
type Pair struct {
	Login    string
	Password string
}

var (
	lowercase = regexp.MustCompile(`[a-z]`)
	uppercase = regexp.MustCompile(`[A-Z]`)
	number    = regexp.MustCompile(`[0-9]`)
	special   = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func PasswordRules(opts ...Option) Rules[string] {
	p := toPolicy(opts)
	return Rules[string]{
		"MIN_LENGTH": {
			Test: func(pw string) bool { return length(pw) < p.MinPasswordLength },
			Hint: fmt.Sprintf("The password must be longer than %d characters", p.MinPasswordLength),
		},
		"MAX_LENGTH": {
			Test: func(pw string) bool { return length(pw) > p.MaxPasswordLength },
			Hint: fmt.Sprintf("The password must be less than %d characters", p.MaxPasswordLength),
		},
		"MIN_PHRASE_LENGTH": {
			Test: func(pw string) bool { return length(pw) < p.MinPhraseLength },
			Hint: fmt.Sprintf("The passphrase must be longer than %d characters", p.MinPhraseLength),
		},
		"REPEAT_CHARS": {
			Test: hasRepeatedChars,
			Hint: "The password can not contain a sequence of repeated chars",
		},
		"ONE_LOWERCASE_CHAR": {
			Test: func(pw string) bool { return !lowercase.MatchString(pw) },
			Hint: "The password must contain lowercase char",
		},
		"ONE_UPPERCASE_CHAR": {
			Test: func(pw string) bool { return !uppercase.MatchString(pw) },
			Hint: "The password must contain uppercase char",
		},
		"ONE_NUMBER": {
			Test: func(pw string) bool { return !number.MatchString(pw) },
			Hint: "The password must contain number",
		},
		"ONE_SPECIAL_CHAR": {
			Test: func(pw string) bool { return !special.MatchString(pw) },
			Hint: "The password must contain special char",
		},
	}
}

func LoginRules(opts ...Option) Rules[string] {
	p := toPolicy(opts)
	return Rules[string]{
		"MIN_LENGTH": {
			Test: func(login string) bool { return length(login) < p.MinLoginLength },
			Hint: fmt.Sprintf("The login must be longer than %d characters", p.MinLoginLength),
		},
		"MAX_LENGTH": {
			Test: func(login string) bool { return length(login) > p.MaxLoginLength },
			Hint: fmt.Sprintf("The login must be less than %d characters", p.MaxLoginLength),
		},
	}
}

func LoginPasswordRules() Rules[Pair] {
	return Rules[Pair]{
		"LOGIN_INCLUDES_PASSWORD": {
			Test: func(c Pair) bool { return strings.Contains(c.Login, c.Password) },
			Hint: "The login can not contain a password",
		},
		"PASSWORD_INCLUDES_LOGIN": {
			Test: func(c Pair) bool { return strings.Contains(c.Password, c.Login) },
			Hint: "The password can not contain a login",
		},
	}
}

func length(s string) int { return utf8.RuneCountInString(s) }

// hasRepeatedChars reports three or more equal characters in a row.
// RE2 has no backreferences, so this is a scan instead of a pattern.
func hasRepeatedChars(s string) bool {
	var (
		prev rune
		run  int
	)
	for _, r := range s {
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= 3 {
			return true
		}
	}
	return false
}
