package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/spark"
	"github.com/aretw0/spark/internal/logging"
	"github.com/aretw0/spark/pkg/adapters/memory"
	"github.com/aretw0/spark/pkg/classnames"
	"github.com/aretw0/spark/pkg/domain"
	"github.com/aretw0/spark/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *spark.Engine {
	t.Helper()
	source, err := memory.NewSource(
		&domain.Theme{Name: "base", Description: "Default", Tokens: tree.Of(
			"color", tree.Of("text", "#111", "link", "blue"),
			"radius", 4,
		)},
		&domain.Theme{Name: "dark", Extends: "base", Tokens: tree.Of(
			"color", tree.Of("text", "#eee"),
			"shadow", "none",
		)},
	)
	require.NoError(t, err)
	eng, err := spark.New("", spark.WithSource(source))
	require.NoError(t, err)
	return eng
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spark.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: tokens\nprefix: ui\n"), 0644))

	opts, err := LoadOptions(path, true, Overrides{Prefix: "app", Port: 9999})
	require.NoError(t, err)
	assert.Equal(t, "tokens", opts.Config.Dir)
	assert.Equal(t, "app", opts.Config.Prefix)
	assert.Equal(t, 9999, opts.Config.Serve.Port)
	assert.Equal(t, "debug", opts.Config.Log.Level)
	assert.True(t, opts.Debug)
}

func TestLoadOptions_EmptyPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spark.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: ui\n"), 0644))

	opts, err := LoadOptions(path, false, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "ui", opts.Config.Prefix)

	opts, err = LoadOptions(path, false, Overrides{PrefixSet: true})
	require.NoError(t, err)
	assert.Equal(t, "", opts.Config.Prefix)
}

func TestCreateEngine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("tokens: {gap: 2px}\n"), 0644))

	opts, err := LoadOptions(filepath.Join(dir, "missing.yaml"), false, Overrides{Dir: dir, Prefix: "x"})
	require.NoError(t, err)

	eng, closer, err := CreateEngine(context.Background(), opts, logging.NewNop())
	require.NoError(t, err)
	defer closer.Close()

	sheet, err := eng.Stylesheet(context.Background(), "base")
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --x-gap: 2px;\n}\n", sheet)
}

func TestCreateEngine_RedisUnavailable(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "none.yaml"), false, Overrides{Redis: "127.0.0.1:1"})
	require.NoError(t, err)

	_, _, err = CreateEngine(context.Background(), opts, logging.NewNop())
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	eng := testEngine(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, Build(ctx, eng, "base", "-", &buf))
	assert.Equal(t, ":root {\n  --spark-color-text: #111;\n  --spark-color-link: blue;\n  --spark-radius: 4;\n}\n", buf.String())

	out := filepath.Join(t.TempDir(), "css", "all.css")
	require.NoError(t, Build(ctx, eng, "", out, &buf))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `[data-theme="dark"] {`)

	assert.ErrorIs(t, Build(ctx, eng, "nope", "-", &buf), domain.ErrThemeNotFound)
}

func TestValidateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ValidateReport(context.Background(), testEngine(t), &buf))
	assert.Contains(t, buf.String(), "2 themes are valid")
}

func TestInspect_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Inspect(context.Background(), testEngine(t), "dark", &buf))

	out := buf.String()
	assert.Contains(t, out, "# dark\n")
	assert.Contains(t, out, "| `--spark-color-text` | #eee | `var(--spark-color-text)` |")
	assert.Contains(t, out, "| `--spark-shadow` | none |")
}

func TestParseItems(t *testing.T) {
	items := ParseItems([]string{"btn", "active=true", "disabled=false", "large", "x=", "=y"})
	assert.Equal(t, []any{
		"btn",
		classnames.Cond{{Name: "active", On: true}, {Name: "disabled", On: false}},
		"large",
		classnames.Cond{{Name: "x", On: false}},
		"=y",
	}, items)
	assert.Equal(t, "btn active large =y", classnames.Join(items...))
}

func TestDiff(t *testing.T) {
	var buf bytes.Buffer
	n, err := Diff(context.Background(), testEngine(t), "base", "dark", &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "~ color.text #111 -> #eee\n+ shadow none\n", buf.String())
}

type watchedSource struct {
	*memory.Source
	changes chan string
}

func (s *watchedSource) Watch(ctx context.Context) (<-chan string, error) {
	return s.changes, nil
}

func TestWatchBuild(t *testing.T) {
	mem, err := memory.NewSource(&domain.Theme{Name: "base", Tokens: tree.Of("gap", "4px")})
	require.NoError(t, err)
	source := &watchedSource{Source: mem, changes: make(chan string)}
	eng, err := spark.New("", spark.WithSource(source))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out := filepath.Join(t.TempDir(), "tokens.css")
	done := make(chan error, 1)
	go func() {
		done <- WatchBuild(ctx, eng, "", out, &bytes.Buffer{}, logging.NewNop())
	}()

	contents := func() string {
		data, _ := os.ReadFile(out)
		return string(data)
	}
	require.Eventually(t, func() bool {
		return contents() == ":root {\n  --spark-gap: 4px;\n}\n"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, mem.Put(&domain.Theme{Name: "base", Tokens: tree.Of("gap", "8px")}))
	source.changes <- "base"
	require.Eventually(t, func() bool {
		return contents() == ":root {\n  --spark-gap: 8px;\n}\n"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("WatchBuild did not stop")
	}
}
