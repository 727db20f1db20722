package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Cyclone1070/larastack/internal/provision"
)

// options holds everything the command line selects.
type options struct {
	path       string
	appName    string
	sourcePath string
	configPath string
	verbose    bool
	assumeYes  bool
}

// ArgumentError is returned when the invocation cannot produce a request.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

func (e *ArgumentError) InvalidInput() bool {
	return true
}

// parseQuery reads path, appName and sourcePath from a query string such as
// "path=/tmp/x&appName=demo". Unknown keys are rejected.
func parseQuery(query string) (provision.Request, error) {
	var req provision.Request
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return req, &ArgumentError{Reason: fmt.Sprintf("malformed query %q: %v", query, err)}
	}
	for key := range values {
		switch key {
		case "path", "appName", "sourcePath":
		default:
			return req, &ArgumentError{Reason: fmt.Sprintf("unknown argument %q", key)}
		}
	}
	req.Path = values.Get("path")
	req.AppName = values.Get("appName")
	req.SourcePath = values.Get("sourcePath")
	return req, nil
}

// buildRequest merges the optional query argument with flags. Flags win.
func buildRequest(args []string, opts options) (provision.Request, error) {
	var req provision.Request
	if len(args) > 0 {
		var err error
		if req, err = parseQuery(args[0]); err != nil {
			return req, err
		}
	}

	if opts.path != "" {
		req.Path = opts.path
	}
	if opts.appName != "" {
		req.AppName = opts.appName
	}
	if opts.sourcePath != "" {
		req.SourcePath = opts.sourcePath
	}

	switch {
	case req.Path == "":
		return req, &ArgumentError{Reason: "path is required (query key \"path\" or --path)"}
	case req.AppName == "":
		return req, &ArgumentError{Reason: "appName is required (query key \"appName\" or --app-name)"}
	}
	return req, nil
}
