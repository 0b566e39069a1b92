// Package funnel implements the two-question qualification step that routes a
// visitor to the discovery-call form or to the consultation offer.
package funnel

import (
	"net/url"
	"strings"

	"github.com/Its-donkey/convertx/internal/routes"
)

// RevenueBracket is the visitor's self-reported sales for the last month.
type RevenueBracket string

// AdSpendBracket is the visitor's self-reported ad spend for the last month.
type AdSpendBracket string

const (
	RevenueBelow200K RevenueBracket = "unValid"
	Revenue200To500K RevenueBracket = "valid-1"
	RevenueAbove500K RevenueBracket = "valid-2"
)

const (
	AdSpendOrganic  AdSpendBracket = "valid-1"
	AdSpendUpTo50K  AdSpendBracket = "valid-2"
	AdSpendAbove50K AdSpendBracket = "valid-3"
)

// Query parameter names used by the selector form.
const (
	ParamRevenue = "revenue"
	ParamAdSpend = "adSpend"
)

// Option is one choice of a selector.
type Option struct {
	Value string
	Label string
}

// RevenueOptions lists the revenue brackets in display order.
func RevenueOptions() []Option {
	return []Option{
		{Value: string(RevenueBelow200K), Label: "Below 200K"},
		{Value: string(Revenue200To500K), Label: "200K to 500K"},
		{Value: string(RevenueAbove500K), Label: "Above 500K"},
	}
}

// AdSpendOptions lists the ad spend brackets in display order.
func AdSpendOptions() []Option {
	return []Option{
		{Value: string(AdSpendOrganic), Label: "I sell only organically"},
		{Value: string(AdSpendUpTo50K), Label: "0 to 50K"},
		{Value: string(AdSpendAbove50K), Label: "Above 50K"},
	}
}

// Selection is the pair of answers given on the getting-started page. Either
// field may be empty while the visitor is still choosing.
type Selection struct {
	Revenue RevenueBracket
	AdSpend AdSpendBracket
}

// Ready reports whether both questions have been answered.
func (s Selection) Ready() bool {
	return s.Revenue != "" && s.AdSpend != ""
}

// Qualified reports whether the revenue answer qualifies for a discovery call.
// Ad spend is collected but never affects qualification.
func (s Selection) Qualified() bool {
	return s.Revenue != RevenueBelow200K
}

// Next returns the path the NEXT STEP control leads to.
func (s Selection) Next() string {
	if s.Revenue == RevenueBelow200K {
		return routes.Disqualified
	}
	return routes.DiscoveryCall
}

// Values encodes the selection as query parameters, omitting empty answers.
func (s Selection) Values() url.Values {
	v := url.Values{}
	if s.Revenue != "" {
		v.Set(ParamRevenue, string(s.Revenue))
	}
	if s.AdSpend != "" {
		v.Set(ParamAdSpend, string(s.AdSpend))
	}
	return v
}

// Parse reads a selection from query or form values. Values that are not one
// of the listed options are dropped.
func Parse(values url.Values) Selection {
	return Selection{
		Revenue: RevenueBracket(pick(values.Get(ParamRevenue), RevenueOptions())),
		AdSpend: AdSpendBracket(pick(values.Get(ParamAdSpend), AdSpendOptions())),
	}
}

func pick(raw string, options []Option) string {
	raw = strings.TrimSpace(raw)
	for _, opt := range options {
		if opt.Value == raw {
			return raw
		}
	}
	return ""
}

// Decision is the outcome of the NEXT STEP guard.
type Decision struct {
	Location string
	Advanced bool
}

// Advance applies the guard: an incomplete selection returns to the selector
// carrying the partial answers, a complete one moves on to Next.
func Advance(s Selection) Decision {
	if !s.Ready() {
		loc := routes.GettingStarted
		if q := s.Values().Encode(); q != "" {
			loc += "?" + q
		}
		return Decision{Location: loc}
	}
	return Decision{Location: s.Next(), Advanced: true}
}
