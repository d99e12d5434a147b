package envloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libraryshop/books-api/envloader"
)

type testConfig struct {
	Table   string  `env:"TEST_TABLE,required"`
	Stage   string  `env:"TEST_STAGE" envDefault:"dev"`
	Port    int     `env:"TEST_PORT" envDefault:"8080"`
	Debug   bool    `env:"TEST_DEBUG" envDefault:"false"`
	Ratio   float64 `env:"TEST_RATIO" envDefault:"0.5"`
	Skipped string
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_TABLE", "dev-books")
	t.Setenv("TEST_PORT", "9090")
	t.Setenv("TEST_DEBUG", "true")

	var cfg testConfig
	require.NoError(t, envloader.Load(&cfg))

	assert.Equal(t, "dev-books", cfg.Table)
	assert.Equal(t, "dev", cfg.Stage, "default applies when the variable is unset")
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Empty(t, cfg.Skipped)
}

func TestLoad_RequiredMissing(t *testing.T) {
	t.Setenv("TEST_TABLE", "")

	var cfg testConfig
	err := envloader.Load(&cfg)

	var missing *envloader.MissingEnvError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "TEST_TABLE", missing.EnvVar)
}

func TestLoad_ConversionError(t *testing.T) {
	t.Setenv("TEST_TABLE", "dev-books")
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg testConfig
	err := envloader.Load(&cfg)

	var fieldErr *envloader.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "TEST_PORT", fieldErr.EnvVar)
}

func TestLoad_NestedStruct(t *testing.T) {
	type inner struct {
		Level string `env:"TEST_LEVEL" envDefault:"info"`
	}
	type outer struct {
		Logging inner
	}

	t.Setenv("TEST_LEVEL", "debug")

	var cfg outer
	require.NoError(t, envloader.Load(&cfg))
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsNonPointer(t *testing.T) {
	t.Parallel()

	err := envloader.Load(testConfig{})

	var invalid *envloader.InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}
