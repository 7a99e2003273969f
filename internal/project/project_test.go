package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
}

func TestCreateScaffoldsProject(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()

	p, err := Create(fs, "demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", p.Dir)
	assert.Equal(t, "demo", p.Config.Name.String)
	assert.Equal(t, "1.0.0", p.Config.Version.String)
	assert.Equal(t, "...", p.Config.Author.String)
	assert.Empty(t, p.Config.Packages)
	assert.Equal(t, DefaultEntry, p.Config.Entry.String)

	conf, err := afero.ReadFile(fs, filepath.Join("demo", ConfigFilename))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "demo",
		"version": "1.0.0",
		"author": "...",
		"packages": [],
		"entry": "src/main.mx"
	}`, string(conf))

	main, err := afero.ReadFile(fs, filepath.Join("demo", "src", "main.mx"))
	require.NoError(t, err)
	assert.Contains(t, string(main), `std::println("Hello, Mix!");`)

	sources, err := p.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("demo", "src", "main.mx")}, sources)
}

func TestCreateRefusesExistingDirectory(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("demo", 0o755))

	_, err := Create(fs, "demo")
	assert.True(t, errors.Is(err, ErrProjectExists))
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	t.Run("no directory", func(t *testing.T) {
		t.Parallel()
		_, err := Open(afero.NewMemMapFs(), "missing")
		assert.True(t, errors.Is(err, ErrNoProject))
	})

	t.Run("no config", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("p", 0o755))
		_, err := Open(fs, "p")
		assert.True(t, errors.Is(err, ErrNoConfig))
	})

	t.Run("malformed config", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "p/mix.conf", `{"name": "p",`)
		_, err := Open(fs, "p")
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("no entry", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "p/mix.conf", `{"name": "p"}`)
		_, err := Open(fs, "p")
		assert.True(t, errors.Is(err, ErrNoEntry))
	})
}

func TestConfigLayers(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "p/mix.conf", `{"name": "p", "entry": "src/app.mx"}`)

	conf, err := Load(fs, "p")
	require.NoError(t, err)
	assert.Equal(t, "src/app.mx", conf.Entry.String)
	assert.Equal(t, "info", conf.LogLevel.String)
	assert.False(t, conf.LogLevel.Valid)

	env, err := ReadEnvConfig(map[string]string{"MIX_ENTRY": "src/env.mx", "MIX_JOBS": "3"})
	require.NoError(t, err)

	conf, err = Load(fs, "p", env)
	require.NoError(t, err)
	assert.Equal(t, "src/env.mx", conf.Entry.String)
	assert.Equal(t, int64(3), conf.Jobs.Int64)

	flags := Config{Entry: null.StringFrom("src/flag.mx")}
	conf, err = Load(fs, "p", env, flags)
	require.NoError(t, err)
	assert.Equal(t, "src/flag.mx", conf.Entry.String)
	assert.Equal(t, int64(3), conf.Jobs.Int64, "unset flag values keep lower layers")
	assert.Equal(t, "p", conf.Name.String)
}

func TestReadEnvConfig(t *testing.T) {
	t.Parallel()

	conf, err := ReadEnvConfig(map[string]string{
		"MIX_LOG_LEVEL": "debug",
		"MIX_NO_COLOR":  "true",
		"MIX_JOBS":      "8",
		"NAME":          "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("debug"), conf.LogLevel)
	assert.Equal(t, null.BoolFrom(true), conf.NoColor)
	assert.Equal(t, null.IntFrom(8), conf.Jobs)
	assert.False(t, conf.Name.Valid)
	assert.False(t, conf.Entry.Valid)

	_, err = ReadEnvConfig(map[string]string{"MIX_JOBS": "many"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		conf Config
		msg  string
	}{
		{"empty entry", Config{Entry: null.StringFrom("")}, "entry must not be empty"},
		{"absolute entry", Config{Entry: null.StringFrom("/src/main.mx")}, "must be relative"},
		{"wrong extension", Config{Entry: null.StringFrom("src/main.go")}, "is not a .mx file"},
		{"negative jobs", Config{Jobs: null.IntFrom(-1)}, "jobs must not be negative"},
		{"bad log level", Config{LogLevel: null.StringFrom("loud")}, "not a valid logrus Level"},
		{"absolute source", Config{Sources: []string{"/lib"}}, "source directory"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := NewConfig().Apply(tt.conf).Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.NoError(t, NewConfig().Validate())
}

func TestSourcesDiscovery(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "p/mix.conf", `{"name": "p", "sources": ["src", "lib"]}`)
	writeFile(t, fs, "p/src/main.mx", "func main() {}")
	writeFile(t, fs, "p/src/util.mx", "func util() {}")
	writeFile(t, fs, "p/lib/b.mx", "")
	writeFile(t, fs, "p/lib/a/deep.mx", "")
	writeFile(t, fs, "p/lib/notes.txt", "")
	writeFile(t, fs, "p/lib/.cache/skip.mx", "")

	p, err := Open(fs, "p")
	require.NoError(t, err)

	sources, err := p.Sources()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("p", "src", "main.mx"),
		filepath.Join("p", "src", "util.mx"),
		filepath.Join("p", "lib", "a", "deep.mx"),
		filepath.Join("p", "lib", "b.mx"),
	}, sources)
}

func TestSourcesMissingDirectory(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "p/mix.conf", `{"sources": ["nope"]}`)
	writeFile(t, fs, "p/src/main.mx", "")

	p, err := Open(fs, "p")
	require.NoError(t, err)

	_, err = p.Sources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source directory nope")
}
