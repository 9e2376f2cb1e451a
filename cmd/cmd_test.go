package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snapclip/pkg/config"
	"snapclip/pkg/ignore"
	"snapclip/pkg/version"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
	t.Setenv(config.EnvPath, "")
	t.Setenv(ignore.EnvGlobal, "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"lib/auth/login_screen.dart":  "class LoginScreen {}\n",
		"lib/auth/signup_screen.dart": "class SignupScreen {}\n",
		"assets/login.png":            "png",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestCollectToStdout(t *testing.T) {
	root := project(t)

	stdout, stderr, err := execute(t, root, "login", "--stdout")
	require.NoError(t, err)

	login := filepath.Join(root, "lib", "auth", "login_screen.dart")
	assert.Equal(t, "### File: "+login+"\n\nclass LoginScreen {}\n", stdout)
	assert.Contains(t, stderr, "Total code files processed: 1")
	assert.Contains(t, stderr, "written to stdout")
}

func TestCollectWithTree(t *testing.T) {
	root := project(t)

	stdout, _, err := execute(t, root, "auth", "--stdout", "--tree")
	require.NoError(t, err)

	blocks := strings.Split(stdout, config.DefaultSeparator)
	require.Len(t, blocks, 3)
	assert.Contains(t, blocks[0], "└── auth/")
	assert.True(t, strings.HasPrefix(blocks[1], "### File: "))
}

func TestCollectUsesConfigFile(t *testing.T) {
	root := project(t)
	cfgPath := filepath.Join(t.TempDir(), "snapclip.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("allow_extensions: [.png]\ndeny_extensions: []\n"), 0644))

	stdout, _, err := execute(t, root, "login", "--stdout", "--config", cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "### File: "+filepath.Join(root, "assets", "login.png")+"\n\npng", stdout)
}

func TestCollectMissingConfigFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "snapclip.yaml")

	stdout, _, err := execute(t, project(t), "login", "--stdout", "--config", missing)
	require.Error(t, err)

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, stdout)
}

func TestCollectMissingBaseEndsGracefully(t *testing.T) {
	stdout, stderr, err := execute(t, filepath.Join(t.TempDir(), "missing"), "login", "--stdout")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Operation failed")
	assert.Contains(t, stderr, "is not a valid directory")
}

func TestCollectNothingFound(t *testing.T) {
	stdout, stderr, err := execute(t, project(t), "nomatch", "--stdout")
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No readable files were found")
}

func TestCollectFailsWithoutClipboard(t *testing.T) {
	saved := clipboard.Unsupported
	clipboard.Unsupported = true
	t.Cleanup(func() { clipboard.Unsupported = saved })

	stdout, _, err := execute(t, project(t), "login")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "no clipboard utility")
	assert.NotContains(t, stdout, "Scanning project root")
}

func TestCollectRequiresTargets(t *testing.T) {
	_, _, err := execute(t, project(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
}

const micro = `<html>
<head>
<title>Lab</title>
<style>body{color:red}</style>
<script type='text/javascript'>start();</script>
</head>
<body>
<img src="dial.png">
</body>
</html>`

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "micro.html")
	require.NoError(t, os.WriteFile(input, []byte(micro), 0644))
	outDir := filepath.Join(dir, "public")

	stdout, _, err := execute(t, "split", "--input", input, "--dir", outDir, "--script", "app.js")
	require.NoError(t, err)

	css, err := os.ReadFile(filepath.Join(outDir, "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{color:red}", string(css))

	js, err := os.ReadFile(filepath.Join(outDir, "app.js"))
	require.NoError(t, err)
	assert.Equal(t, "start();", string(js))

	html, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<script src="app.js"></script>`)
	assert.Contains(t, string(html), "<title>Lab</title>")

	assert.Contains(t, stdout, "CSS file created")
}

func TestSplitMissingInput(t *testing.T) {
	_, _, err := execute(t, "split", "--input", filepath.Join(t.TempDir(), "micro.html"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspectCommand(t *testing.T) {
	input := filepath.Join(t.TempDir(), "micro.html")
	require.NoError(t, os.WriteFile(input, []byte(micro), 0644))

	stdout, _, err := execute(t, "inspect", "-i", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "CSS Content Length: 15 characters")
	assert.Contains(t, stdout, "Images Referenced: 1")
	assert.Contains(t, stdout, "  - dial.png")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)

	stdout, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, version.Name+" "+version.Version+" ("))
	assert.Contains(t, stdout, "\nclipboard: ")
}

func TestVersionReportsMissingClipboard(t *testing.T) {
	saved := clipboard.Unsupported
	clipboard.Unsupported = true
	t.Cleanup(func() { clipboard.Unsupported = saved })

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "clipboard: unavailable")
}
