package changelogtesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-changelog/changelog"
	"github.com/forestrie/go-changelog/keycmp"
	"github.com/forestrie/go-changelog/keyfilter"
	"github.com/stretchr/testify/require"
)

type TestConfig struct {
	// Seed drives the key and value generator. It is normal to force it to
	// some fixed value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// Comparator is a keycmp name, "" selects the canonical comparator.
	Comparator string
	// LogLevel is passed to logger.New, "" defaults to NOOP.
	LogLevel string
	// FilterBitsPerKey pairs every changelog with a key filter sized for its
	// capacity. Zero means no filter.
	FilterBitsPerKey uint64
}

// filterK is the bits set per key. Near optimal for 10 bits per key.
const filterK = 7

type TestContext struct {
	Log logger.Logger
	T   testing.TB
	Cfg TestConfig
	G   *TestGenerator
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	return TestContext{
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		T:   t,
		Cfg: cfg,
		G:   NewTestGenerator(cfg.Seed),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// NewChangelog allocates a fresh buffer and initializes an empty changelog in
// it, configured with the context's comparator and logger.
func (c *TestContext) NewChangelog(capacity uint64) *changelog.Changelog {
	c.T.Helper()

	cmp, err := keycmp.ByName(c.Cfg.Comparator)
	require.NoError(c.T, err)

	opts := []changelog.Option{changelog.WithComparator(cmp), changelog.WithLogger(c.Log)}
	if c.Cfg.FilterBitsPerKey != 0 {
		size, err := keyfilter.RegionBytesFor(capacity, c.Cfg.FilterBitsPerKey)
		require.NoError(c.T, err)
		f, err := keyfilter.Init(make([]byte, size), capacity, c.Cfg.FilterBitsPerKey, filterK)
		require.NoError(c.T, err)
		opts = append(opts, changelog.WithKeyFilter(f))
	}

	buf := make([]byte, changelog.RequiredSize(capacity))
	cl, err := changelog.New(buf, capacity, opts...)
	require.NoError(c.T, err)
	return cl
}

// Reopen re-interprets the changelog's buffer, and its filter region if it has
// one, as a later invocation against the same persistent buffers would.
func (c *TestContext) Reopen(cl *changelog.Changelog) *changelog.Changelog {
	c.T.Helper()

	cmp, err := keycmp.ByName(c.Cfg.Comparator)
	require.NoError(c.T, err)

	opts := []changelog.Option{changelog.WithComparator(cmp), changelog.WithLogger(c.Log)}
	if cl.Filter() != nil {
		f, err := keyfilter.Open(cl.Filter().Bytes())
		require.NoError(c.T, err)
		opts = append(opts, changelog.WithKeyFilter(f))
	}

	reopened, err := changelog.FromBytes(cl.Bytes(), opts...)
	require.NoError(c.T, err)
	return reopened
}
