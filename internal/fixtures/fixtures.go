// Package fixtures returns random test data.
// This is primary and only used for testing.
package fixtures

import (
	"strings"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

var mutex sync.Mutex

// Name returns a random, human readable name.
func Name() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

// Names returns n random names.
func Names(n int) []string {
	var names []string
	for i := 0; i < n; i++ {
		names = append(names, Name())
	}
	return names
}

// Number returns a random number in the [min,max) range.
func Number(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max)
}

// Numbers returns n random numbers in the [min,max) range.
func Numbers(n, min, max int) []int {
	var ns []int
	for i := 0; i < n; i++ {
		ns = append(ns, Number(min, max))
	}
	return ns
}

// Bool returns a random boolean.
func Bool() bool {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Boolean()
}

// Login returns a random lowercase login name that is at least 6 characters long.
func Login() string {
	login := strings.ToLower(Name())
	for len(login) < 6 {
		login += strings.ToLower(Name())
	}
	return login
}

// Password returns a random password that has lowercase, uppercase, number and special characters,
// is longer than 20 characters, and has no character repeated three times in a row.
func Password() string {
	var b strings.Builder
	for b.Len() < 28 {
		b.WriteString("X")
		b.WriteString(strings.ToLower(Name()))
		b.WriteString("-7#")
	}
	return collapseRepeats(b.String())
}

func collapseRepeats(s string) string {
	var (
		out   []rune
		count int
		prev  rune
	)
	for i, r := range s {
		if i != 0 && r == prev {
			count++
		} else {
			count = 1
		}
		prev = r
		if 2 < count {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
