package wordlist

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/lordvidex/x/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleConfig() Config {
	cfg := DefaultConfig()
	cfg.Input = map[Category]string{
		Name:     "bob",
		Initials: "x",
		Years:    "99",
		Tags:     "admin",
	}
	cfg.Start = Name
	cfg.Order = []Category{Initials, Years, Tags}
	cfg.Randomize = false
	cfg.Depth = 2
	return cfg
}

func TestCombine_Example(t *testing.T) {
	res, err := Combine(context.Background(), exampleConfig())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"bob\n", "x\n", "99\n", "admin\n",
		"bobx\n", "bob99\n", "bobadmin\n",
		"xbob\n", "x99\n", "xadmin\n",
		"99bob\n", "99x\n", "99admin\n",
		"adminbob\n", "adminx\n", "admin99\n",
	}, res.Lines(false))
	assert.Equal(t, []Category{Name, Initials, Years, Tags}, res.Order)
}

func TestCombine_Prefix(t *testing.T) {
	cfg := exampleConfig()
	cfg.Strategy = Prefix
	res, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob\n", "bobx\n"}, res.Lines(false))

	cfg.Depth = 4
	res, err = Combine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob\n", "bobx\n", "bobx99\n"}, res.Lines(false), "bobx99admin is longer than 10")
}

func TestCombine_Mutations(t *testing.T) {
	cfg := exampleConfig()
	cfg.Depth = 1
	cfg.Leet = true
	cfg.Upper = true
	cfg.Append = "!"
	cfg.MinLength = 3
	cfg.MaxLength = 5
	res, err := Combine(context.Background(), cfg)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"bob\n", "bob!\n", "b0b\n", "b0b!\n",
		"BOB\n", "BOB!\n", "B0B\n", "B0B!\n",
		"admin\n", "4dm1n\n", "4dm1n!\n",
		"ADMIN\n", "4DM1N\n", "4DM1N!\n",
	}, res.Lines(false))
}

func TestCombine_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"empty category", func(c *Config) { c.Input[Years] = "\n \n" }, ErrEmptyCategory},
		{"missing category", func(c *Config) { delete(c.Input, Tags) }, ErrEmptyCategory},
		{"zero min", func(c *Config) { c.MinLength = 0 }, ErrInvalidRange},
		{"max below min", func(c *Config) { c.MinLength, c.MaxLength = 5, 4 }, ErrInvalidRange},
		{"zero depth", func(c *Config) { c.Depth = 0 }, ErrInvalidRange},
		{"order conflict", func(c *Config) { c.Order = []Category{Initials, Years, Years} }, ErrOrderConflict},
		{"bad start", func(c *Config) { c.Start = "pets" }, ErrOrderConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := exampleConfig()
			tt.modify(&cfg)
			_, err := Combine(context.Background(), cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCombine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Combine(ctx, exampleConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCombine_Idempotent(t *testing.T) {
	cfg := randomConfig(gofakeit.New(11))
	cfg.Randomize = false
	first, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	second, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, first.Lines(false), second.Lines(false))
}

func TestCombine_SeededRandomOrder(t *testing.T) {
	cfg := exampleConfig()
	cfg.Randomize = true
	cfg.Strategy = Prefix
	cfg.Seed = ptr.Obj(int64(1234))

	first, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	second, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Lines(false), second.Lines(false))
	assert.Equal(t, int64(1234), first.Seed)
	assert.Equal(t, Name, first.Order[0])

	// an unseeded run reports the seed it used so it can be replayed
	cfg.Seed = nil
	unseeded, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	cfg.Seed = ptr.Obj(unseeded.Seed)
	replay, err := Combine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, unseeded.Order, replay.Order)
}

// TestCombine_Properties checks the output invariants on random configurations
func TestCombine_Properties(t *testing.T) {
	f := gofakeit.New(42)
	for i := 0; i < 25; i++ {
		cfg := randomConfig(f)
		res, err := Combine(context.Background(), cfg)
		require.NoError(t, err)

		lines := res.Lines(cfg.Sort)
		seen := make(map[string]bool, len(lines))
		prev := 0
		for _, line := range lines {
			require.True(t, strings.HasSuffix(line, "\n"))
			require.False(t, seen[line], "duplicate line %q", line)
			seen[line] = true

			n := utf8.RuneCountInString(line) - 1
			if cfg.Sort {
				require.GreaterOrEqual(t, n, prev, "sorted output must not decrease in length")
				prev = n
			}
			if n < cfg.MinLength || n > cfg.MaxLength {
				// only leet forms with an affix escape the length window
				word := strings.TrimSuffix(line, "\n")
				decorated := (cfg.Append != "" && strings.HasSuffix(word, cfg.Append)) ||
					(cfg.Prepend != "" && strings.HasPrefix(word, cfg.Prepend))
				require.True(t, cfg.Leet && decorated, "line %q outside [%d, %d]", word, cfg.MinLength, cfg.MaxLength)
			}
		}
	}
}

func randomConfig(f *gofakeit.Faker) Config {
	cfg := DefaultConfig()
	words := func(gen func() string) string {
		n := f.Number(1, 3)
		ws := make([]string, n)
		for i := range ws {
			ws[i] = gen()
		}
		return strings.Join(ws, "\n")
	}
	cfg.Input = map[Category]string{
		Name:     words(f.FirstName),
		Initials: words(func() string { return f.LetterN(uint(f.Number(1, 2))) }),
		Years:    words(func() string { return strconv.Itoa(f.Year())[2:] }),
		Tags:     words(f.Word),
	}
	start := Categories[f.Number(0, len(Categories)-1)]
	cfg.Start = start
	cfg.Randomize = f.Bool()
	cfg.Order = nil
	cfg.Seed = ptr.Obj(f.Int64())
	if f.Bool() {
		cfg.Strategy = Prefix
	}
	cfg.Depth = f.Number(1, 3)
	cfg.MinLength = f.Number(1, 6)
	cfg.MaxLength = cfg.MinLength + f.Number(0, 10)
	cfg.Leet = f.Bool()
	cfg.Capitalize = f.Bool()
	cfg.Upper = f.Bool()
	if f.Bool() {
		cfg.Append = f.Numerify("#!")
	}
	if f.Bool() {
		cfg.Prepend = f.LetterN(1)
	}
	cfg.Sort = f.Bool()
	return cfg
}
