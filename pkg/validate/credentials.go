package validate

import (
	"context"
	"strings"

	"github.com/adamluzsi/lazykit/iterators"
	"github.com/adamluzsi/lazykit/pkg/logger"
	"github.com/adamluzsi/lazykit/port/option"
)

// Strength is the outcome of a credential check.
// Both fields hold one slice of hints per failed rule group.
type Strength struct {
	Required [][]string
	Optional [][]string
}

// Valid reports whether the required rules passed.
func (s Strength) Valid() bool { return len(s.Required) == 0 }

// Strong reports whether the optional rules passed.
func (s Strength) Strong() bool { return len(s.Optional) == 0 }

// Err returns a ValidationError with the required hints, or nil when the credential is valid.
func (s Strength) Err() error {
	if s.Valid() {
		return nil
	}
	var hints []string
	for _, group := range s.Required {
		hints = append(hints, group...)
	}
	return ValidationError{Cause: ErrWeakCredentials.F("%s", strings.Join(hints, "; "))}
}

// Check evaluates the argument against a rule table.
//
// required and optional are lists of rule groups, and a group is a list of rule names.
// Names missing from the table are ignored.
// Groups are alternatives: when any group reports no hint, the whole list passes.
func Check[A any](rules Rules[A], arg A, required, optional [][]string) (Strength, error) {
	for name, rule := range rules {
		if rule.Test == nil {
			return Strength{}, ImplementationError.F("rule %s has no test", name)
		}
	}
	return check(rules, arg, required, optional), nil
}

func CheckLogin(login string, required, optional [][]string, opts ...Option) Strength {
	return check(LoginRules(opts...), login, required, optional)
}

func CheckPassword(password string, required, optional [][]string, opts ...Option) Strength {
	return check(PasswordRules(opts...), password, required, optional)
}

func CheckLoginPassword(login, password string, required, optional [][]string) Strength {
	return check(LoginPasswordRules(), Pair{Login: login, Password: password}, required, optional)
}

func check[A any](rules Rules[A], arg A, required, optional [][]string) Strength {
	s := Strength{
		Required: evaluate(rules, arg, required),
		Optional: evaluate(rules, arg, optional),
	}
	if !s.Valid() {
		logger.Debug(context.Background(), "credential check failed",
			logger.Field("required_hints", s.Required))
	}
	return s
}

func evaluate[A any](rules Rules[A], arg A, groups [][]string) [][]string {
	hints := iterators.Map(iterators.Slice(groups), func(names []string) []string {
		failed := iterators.Slice(names).Filter(func(name string) bool {
			rule, ok := rules[name]
			return ok && rule.Test(arg)
		})
		return iterators.Map(failed, func(name string) string { return rules[name].Hint }).Collect()
	})

	var out [][]string
	if !hints.Each(func(group []string) bool {
		if len(group) == 0 {
			return false
		}
		out = append(out, group)
		return true
	}) {
		return nil
	}
	return out
}

func toPolicy(opts []Option) Policy {
	return option.ToConfig[Policy](opts)
}
