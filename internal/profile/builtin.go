package profile

import (
	"github.com/thoreinstein/sysdoc/internal/check"
	"github.com/thoreinstein/sysdoc/internal/datasource"
	"github.com/thoreinstein/sysdoc/internal/doctor"
)

func init() {
	Register(MacBookPro102{})
	Register(LinuxCustom{})
}

// pairs accumulates the pairs of one builder call, dropping those outside
// the selected categories.
type pairs struct {
	opts Options
	out  []*doctor.Pair
}

func (p *pairs) add(c Category, chk check.Check, ds datasource.DataSource) {
	if !p.opts.Has(c) {
		return
	}
	p.out = append(p.out, &doctor.Pair{Check: chk, Data: ds, Category: c.String()})
}

// streamTriadCheck builds the STREAM bandwidth check for a triad threshold.
func streamTriadCheck(name string, mbps float64, fail, pass string) check.Check {
	return check.NewRulesEngine(name,
		"Checking STREAM performance",
		fail,
		"Unable to perform check",
		pass,
	).AddRule(check.StreamTriadAtLeast(mbps))
}
