package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/Cyclone1070/larastack/internal/provision"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	called bool
	req    provision.Request
	opts   options
}

func executeRoot(t *testing.T, args ...string) (*captured, error) {
	t.Helper()
	got := &captured{}
	cmd := newRootCmd(func(_ context.Context, req provision.Request, opts options) error {
		got.called = true
		got.req = req
		got.opts = opts
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return got, cmd.ExecuteContext(context.Background())
}

func TestRootCmd_QueryString(t *testing.T) {
	got, err := executeRoot(t, "path=/srv/www&appName=shop&sourcePath=/opt/tpl")

	require.NoError(t, err)
	require.True(t, got.called)
	assert.Equal(t, provision.Request{Path: "/srv/www", AppName: "shop", SourcePath: "/opt/tpl"}, got.req)
}

func TestRootCmd_Flags(t *testing.T) {
	got, err := executeRoot(t, "--path", "/srv/www", "--app-name", "shop", "--yes", "-v", "--config", "/etc/larastack.yaml")

	require.NoError(t, err)
	assert.Equal(t, provision.Request{Path: "/srv/www", AppName: "shop"}, got.req)
	assert.True(t, got.opts.assumeYes)
	assert.True(t, got.opts.verbose)
	assert.Equal(t, "/etc/larastack.yaml", got.opts.configPath)
}

func TestRootCmd_FlagsOverrideQuery(t *testing.T) {
	got, err := executeRoot(t, "path=/tmp&appName=demo", "--app-name", "shop")

	require.NoError(t, err)
	assert.Equal(t, "/tmp", got.req.Path)
	assert.Equal(t, "shop", got.req.AppName)
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no arguments", nil, "path is required"},
		{"missing app name", []string{"path=/tmp"}, "appName is required"},
		{"unknown key", []string{"path=/tmp&appName=x&port=80"}, `unknown argument "port"`},
		{"malformed query", []string{"path=%zz"}, "malformed query"},
		{"too many arguments", []string{"path=/tmp", "appName=x"}, "accepts at most 1 arg"},
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := executeRoot(t, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, got.called)
		})
	}
}

func TestParseQuery_LeadingQuestionMark(t *testing.T) {
	req, err := parseQuery("?path=/tmp/x&appName=demo")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", req.Path)
	assert.Equal(t, "demo", req.AppName)
	assert.Empty(t, req.SourcePath)
}

func TestArgumentError_IsInvalidInput(t *testing.T) {
	_, err := buildRequest(nil, options{path: "/tmp"})

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.True(t, argErr.InvalidInput())
}

func TestRunProvision_ConfigError(t *testing.T) {
	err := runProvision(context.Background(), provision.Request{Path: t.TempDir(), AppName: "shop"}, options{
		configPath: t.TempDir() + "/missing.yaml",
	})

	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, logrus.WarnLevel, newLogger(&buf, false).GetLevel())
	assert.Equal(t, logrus.DebugLevel, newLogger(&buf, true).GetLevel())
}

func TestExecute_ReportsErrorAndReturns(t *testing.T) {
	var stderr bytes.Buffer
	cmd := newRootCmd(func(context.Context, provision.Request, options) error {
		t.Error("run must not be reached")
		return nil
	})
	cmd.SetArgs([]string{"path=/tmp"})

	execute(context.Background(), cmd, &stderr)

	assert.Equal(t, "Error: appName is required (query key \"appName\" or --app-name)\n", stderr.String())
}

func TestExecute_SuccessWritesNothing(t *testing.T) {
	var stderr bytes.Buffer
	cmd := newRootCmd(func(context.Context, provision.Request, options) error { return nil })
	cmd.SetArgs([]string{"path=/tmp&appName=shop"})

	execute(context.Background(), cmd, &stderr)

	assert.Empty(t, stderr.String())
}
