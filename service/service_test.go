package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordlister/repository"
	"github.com/kodekulture/wordlister/repository/file"
	"github.com/kodekulture/wordlister/repository/temp"
	"github.com/kodekulture/wordlister/service/hasher"
	"github.com/kodekulture/wordlister/wordlist"
)

// failingArchive rejects every dump
type failingArchive struct {
	*temp.RunRepo
	err error
}

func (f failingArchive) Dump(context.Context, uuid.UUID, []string) error {
	return f.err
}

func testConfig() wordlist.Config {
	cfg := wordlist.DefaultConfig()
	cfg.Input = map[wordlist.Category]string{
		wordlist.Name:     "bob",
		wordlist.Initials: "x",
		wordlist.Years:    "99",
		wordlist.Tags:     "admin",
	}
	cfg.Randomize = false
	cfg.Depth = 2
	cfg.Sort = true
	cfg.Output = "/out/list.txt"
	return cfg
}

func TestService_Generate(t *testing.T) {
	fs := afero.NewMemMapFs()
	archive := temp.New()
	s := New(file.New(fs, nil), archive)

	run, err := s.Generate(context.Background(), testConfig())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.True(t, run.Archived)
	assert.Equal(t, []wordlist.Category{wordlist.Name, wordlist.Initials, wordlist.Years, wordlist.Tags}, run.Order)

	b, err := afero.ReadFile(fs, "/out/list.txt")
	require.NoError(t, err)
	assert.Contains(t, string(b), "bobx\n")
	assert.Contains(t, string(b), "bob99\n")

	lines, err := s.Lines(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Len(t, lines, run.Lines)
	assert.Equal(t, string(b), joined(lines))
}

func TestService_GenerateWithoutArchive(t *testing.T) {
	s := New(file.New(afero.NewMemMapFs(), nil), nil)
	run, err := s.Generate(context.Background(), testConfig())
	require.NoError(t, err)
	assert.False(t, run.Archived)

	_, err = s.Runs(context.Background())
	assert.ErrorIs(t, err, ErrNoArchive)
	assert.ErrorIs(t, s.Clear(context.Background()), ErrNoArchive)
}

func TestService_GenerateInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(file.New(fs, nil), nil)

	cfg := testConfig()
	cfg.Input[wordlist.Tags] = "  \n\n"
	_, err := s.Generate(context.Background(), cfg)
	require.ErrorIs(t, err, wordlist.ErrEmptyCategory)

	// nothing is written when generation fails
	_, err = fs.Stat("/out/list.txt")
	assert.Error(t, err)
}

func TestService_GenerateSinkFailure(t *testing.T) {
	archive := temp.New()
	s := New(file.New(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil), archive)
	_, err := s.Generate(context.Background(), testConfig())
	require.Error(t, err)

	ids, err := archive.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestService_GenerateArchiveFailure(t *testing.T) {
	archive := failingArchive{RunRepo: temp.New(), err: errors.New("disk full")}
	s := New(file.New(afero.NewMemMapFs(), nil), archive)
	_, err := s.Generate(context.Background(), testConfig())
	assert.ErrorIs(t, err, archive.err)
}

func TestService_Permute(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(file.New(fs, nil), temp.New())

	cfg := wordlist.PermuteConfig{Options: wordlist.DefaultOptions(), Words: "cat\ndog"}
	cfg.Depth = 2
	cfg.Sort = true
	cfg.Output = "/perm.txt"
	run, err := s.Permute(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, run.Lines)

	b, err := afero.ReadFile(fs, "/perm.txt")
	require.NoError(t, err)
	assert.Equal(t, "cat\ndog\ncatdog\ndogcat\n", string(b))
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	s := New(file.New(afero.NewMemMapFs(), nil), temp.New())
	first, err := s.Generate(ctx, testConfig())
	require.NoError(t, err)
	second, err := s.Generate(ctx, testConfig())
	require.NoError(t, err)

	ids, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Lines(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrRunNotFound)
}

func TestService_Audit(t *testing.T) {
	s := New(file.New(afero.NewMemMapFs(), nil), nil)
	lines := []string{"bob\n", "b0b\n", "bob99\n"}
	h, err := hasher.New("md5")
	require.NoError(t, err)

	tests := []struct {
		name   string
		hashed string
		want   string
		found  bool
	}{
		// md5("b0b")
		{name: "found", hashed: "1340ec9c15a1484e054e28282f2ba8db", want: "b0b", found: true},
		{name: "missing", hashed: "00000000000000000000000000000000", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := s.Audit(context.Background(), h, tt.hashed, lines)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_AuditBcrypt(t *testing.T) {
	s := New(file.New(afero.NewMemMapFs(), nil), nil)
	hashed, err := hasher.Bcrypt{}.Hash("bobx!")
	require.NoError(t, err)

	got, found, err := s.Audit(context.Background(), hasher.Bcrypt{}, hashed, []string{"bob\n", "bobx!\n"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "bobx!", got)
}

func joined(lines []string) string {
	var out string
	for _, l := range lines {
		out += l
	}
	return out
}
