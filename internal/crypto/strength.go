package crypto

import (
	"strings"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

const (
	MaxStrengthScore = 5
	GoodLength       = 12

	ReasonGoodLength = "Good length"
	ReasonUppercase  = "Has uppercase"
	ReasonLowercase  = "Has lowercase"
	ReasonNumbers    = "Has numbers"
	ReasonSymbols    = "Has symbols"
)

// StrengthReport is the outcome of Evaluate. Score counts the satisfied checks and
// Reasons lists their labels in check order.
type StrengthReport struct {
	Score    int
	Reasons  []string
	Estimate Estimate
}

// Estimate is a zxcvbn guess-based estimate reported next to the heuristic score.
// It does not contribute to StrengthReport.Score.
type Estimate struct {
	Score     int
	Entropy   float64
	CrackTime string
}

type strengthCheck struct {
	reason string
	ok     func(string) bool
}

var strengthChecks = []strengthCheck{
	{ReasonGoodLength, func(p string) bool { return utf8.RuneCountInString(p) >= GoodLength }},
	{ReasonUppercase, func(p string) bool { return strings.ContainsAny(p, UppercaseChars) }},
	{ReasonLowercase, func(p string) bool { return strings.ContainsAny(p, LowercaseChars) }},
	{ReasonNumbers, func(p string) bool { return strings.ContainsAny(p, NumberChars) }},
	{ReasonSymbols, func(p string) bool { return strings.ContainsAny(p, SymbolChars) }},
}

// Evaluate scores a password against the five strength checks. It has no side
// effects and accepts any string, including the empty one.
func Evaluate(password string) StrengthReport {
	report := StrengthReport{Reasons: []string{}}

	for _, c := range strengthChecks {
		if c.ok(password) {
			report.Score++
			report.Reasons = append(report.Reasons, c.reason)
		}
	}

	if password != "" {
		est := zxcvbn.PasswordStrength(password, nil)
		report.Estimate = Estimate{
			Score:     est.Score,
			Entropy:   est.Entropy,
			CrackTime: est.CrackTimeDisplay,
		}
	}

	return report
}
