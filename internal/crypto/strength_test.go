package crypto

import (
	"reflect"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		wantScore   int
		wantReasons []string
	}{
		{
			name:        "empty",
			password:    "",
			wantScore:   0,
			wantReasons: []string{},
		},
		{
			name:      "all criteria",
			password:  "Abcdefghijk1!",
			wantScore: 5,
			wantReasons: []string{
				ReasonGoodLength, ReasonUppercase, ReasonLowercase, ReasonNumbers, ReasonSymbols,
			},
		},
		{
			name:        "short lowercase",
			password:    "abc",
			wantScore:   1,
			wantReasons: []string{ReasonLowercase},
		},
		{
			name:        "long digits",
			password:    "123456789012",
			wantScore:   2,
			wantReasons: []string{ReasonGoodLength, ReasonNumbers},
		},
		{
			name:        "eleven characters is not long enough",
			password:    "ABCDEFGHIJK",
			wantScore:   1,
			wantReasons: []string{ReasonUppercase},
		},
		{
			name:        "symbols only",
			password:    "~`\\\"",
			wantScore:   1,
			wantReasons: []string{ReasonSymbols},
		},
		{
			name:        "non-ascii counts by character",
			password:    "ééééééééééé1",
			wantScore:   2,
			wantReasons: []string{ReasonGoodLength, ReasonNumbers},
		},
		{
			name:        "whitespace only",
			password:    "   ",
			wantScore:   0,
			wantReasons: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.password)
			if got.Score != tt.wantScore {
				t.Errorf("Evaluate(%q).Score = %d, want %d", tt.password, got.Score, tt.wantScore)
			}
			if !reflect.DeepEqual(got.Reasons, tt.wantReasons) {
				t.Errorf("Evaluate(%q).Reasons = %v, want %v", tt.password, got.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	for _, p := range []string{"", "hunter2", "Abcdefghijk1!", "correct horse battery staple"} {
		first := Evaluate(p)
		second := Evaluate(p)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Evaluate(%q) not repeatable: %+v vs %+v", p, first, second)
		}
	}
}

func TestEvaluateEstimate(t *testing.T) {
	if est := Evaluate("").Estimate; est != (Estimate{}) {
		t.Errorf("Evaluate(\"\").Estimate = %+v, want zero value", est)
	}

	weak := Evaluate("password").Estimate
	strong := Evaluate("t7#Qm!v9Lr@2xZp&").Estimate
	if weak.Score > strong.Score {
		t.Errorf("estimate score for common word (%d) above random string (%d)", weak.Score, strong.Score)
	}
	if strong.Entropy <= weak.Entropy {
		t.Errorf("estimate entropy for random string (%f) not above common word (%f)", strong.Entropy, weak.Entropy)
	}
	if strong.CrackTime == "" {
		t.Error("estimate crack time should not be empty")
	}
}

func TestEvaluateGeneratedPasswords(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := Generate(DefaultOptions())
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if got := Evaluate(p).Score; got != MaxStrengthScore {
			t.Errorf("Evaluate(%q).Score = %d, want %d", p, got, MaxStrengthScore)
		}
	}
}
