package validate

import "github.com/adamluzsi/lazykit/port/option"

type Option option.Option[Policy]

// Policy holds the length limits of the credential rules.
type Policy struct {
	MinPasswordLength int
	MaxPasswordLength int
	MinPhraseLength   int
	MinLoginLength    int
	MaxLoginLength    int
}

func (p *Policy) Init() {
	p.MinPasswordLength = 10
	p.MaxPasswordLength = 128
	p.MinPhraseLength = 20
	p.MinLoginLength = 6
	p.MaxLoginLength = 255
}

func MinPasswordLength(n int) Option {
	return option.Func[Policy](func(p *Policy) { p.MinPasswordLength = n })
}

func MaxPasswordLength(n int) Option {
	return option.Func[Policy](func(p *Policy) { p.MaxPasswordLength = n })
}

func MinPhraseLength(n int) Option {
	return option.Func[Policy](func(p *Policy) { p.MinPhraseLength = n })
}

func MinLoginLength(n int) Option {
	return option.Func[Policy](func(p *Policy) { p.MinLoginLength = n })
}

func MaxLoginLength(n int) Option {
	return option.Func[Policy](func(p *Policy) { p.MaxLoginLength = n })
}
