package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumberChars    = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	DefaultLength = 12
)

var (
	ErrInvalidLength      = errors.New("password length must be at least 1")
	ErrNoCharacterClass   = errors.New("at least one character type must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
	ErrGenerationFailure  = errors.New("password generation failed")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 12 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// classes returns the selected character classes in seeding order.
func (o GeneratorOptions) classes() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if o.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if o.Numbers {
		sets = append(sets, NumberChars)
	}
	if o.Symbols {
		sets = append(sets, SymbolChars)
	}
	return sets
}

// Generator draws passwords from a randomness source.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a Generator reading randomness from r.
// A nil reader falls back to crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a random password with crypto/rand based on the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a random password based on the given options. The result holds
// exactly opts.Length characters, at least one from every selected class and none
// from an unselected one.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	requiredSets := opts.classes()
	if len(requiredSets) == 0 {
		return "", ErrNoCharacterClass
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	var pool string
	for _, charset := range requiredSets {
		pool += charset
	}

	result := make([]byte, opts.Length)

	// One character from each selected class, in class order.
	for i, charset := range requiredSets {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// The seeded prefix is class-ordered until shuffled.
	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGenerationFailure, err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle performs a Fisher-Yates shuffle.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
