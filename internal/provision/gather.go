package provision

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Cyclone1070/larastack/internal/ui"
)

const (
	msgDatabaseRequired = "Database name is required"
	msgPasswordRequired = "Mysql password is required"
	msgPasswordMismatch = "Password and confirmation do not match. Please enter your password again and confirm it"
	msgDatabaseQuoted   = `Database name must not contain " or \`
	msgPasswordQuoted   = `Mysql password must not contain " or \`
)

// unrenderable lists characters that break the double-quoted compose scalars
// the database name and password are substituted into.
const unrenderable = `"\`

// gatherSettings fills the run's configurable values, each defaulted or validated.
func (e *Engine) gatherSettings(ctx context.Context, pc *Context) error {
	build := e.cfg.Build
	var err error

	if pc.WorkingDir, err = e.askText(ctx,
		fmt.Sprintf("Specify working directory (%s) ", build.WorkingDirectory),
		build.WorkingDirectory, "Default working directory %s selected"); err != nil {
		return err
	}
	if pc.AppPort, err = e.askPort(ctx,
		fmt.Sprintf("Specify application external port (%d) ", build.AppExternalPort),
		build.AppExternalPort, "Default application port %d selected"); err != nil {
		return err
	}
	if pc.DBPort, err = e.askPort(ctx,
		fmt.Sprintf("Specify mysql external port (%d) ", build.MysqlExternalPort),
		build.MysqlExternalPort, "Default mysql port %d selected"); err != nil {
		return err
	}
	if pc.DBName, err = e.askDatabaseName(ctx); err != nil {
		return err
	}
	if pc.DBPassword, err = e.askPassword(ctx); err != nil {
		return err
	}
	return nil
}

// askText returns the operator's answer, or def for an empty answer.
func (e *Engine) askText(ctx context.Context, prompt, def, defaultMsg string) (string, error) {
	answer, err := e.ui.ReadInput(ctx, prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		e.ui.WriteStatus(ui.PhaseInfo, fmt.Sprintf(defaultMsg, def))
		return def, nil
	}
	return answer, nil
}

// askPort is askText for ports. Text that is not a number becomes 0.
func (e *Engine) askPort(ctx context.Context, prompt string, def int, defaultMsg string) (int, error) {
	answer, err := e.ui.ReadInput(ctx, prompt)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		e.ui.WriteStatus(ui.PhaseInfo, fmt.Sprintf(defaultMsg, def))
		return def, nil
	}
	port, err := strconv.Atoi(answer)
	if err != nil {
		e.ui.WriteStatus(ui.PhaseError, fmt.Sprintf("Port \"%s\" is not a number, 0 selected", answer))
		return 0, nil
	}
	return port, nil
}

func (e *Engine) askDatabaseName(ctx context.Context) (string, error) {
	attempts := e.cfg.Prompt.MaxAttempts
	var reason string
	for range attempts {
		name, err := e.ui.ReadInput(ctx, "Database name: ")
		if err != nil {
			return "", err
		}
		reason = msgDatabaseRequired
		if name != "" {
			if !strings.ContainsAny(name, unrenderable) {
				return name, nil
			}
			reason = msgDatabaseQuoted
		}
		e.ui.WriteStatus(ui.PhaseError, reason)
	}
	return "", &ValidationError{Field: "database name", Attempts: attempts, Reason: reason}
}

// askPassword collects the password and its confirmation. Any failure,
// including a mismatch, restarts with a fresh password entry.
func (e *Engine) askPassword(ctx context.Context) (string, error) {
	attempts := e.cfg.Prompt.MaxAttempts
	minLen := e.cfg.Build.MysqlPasswordMin
	var reason string

	for range attempts {
		password, err := e.ui.ReadPassword(ctx, "Mysql root password: ")
		if err != nil {
			return "", err
		}

		switch {
		case password == "":
			reason = msgPasswordRequired
		case len(password) < minLen:
			reason = fmt.Sprintf("Mysql password length must not be less than %d characters", minLen)
		case strings.ContainsAny(password, unrenderable):
			reason = msgPasswordQuoted
		default:
			confirmation, err := e.ui.ReadPassword(ctx, "Confirm mysql root password: ")
			if err != nil {
				return "", err
			}
			if confirmation == password {
				return password, nil
			}
			reason = msgPasswordMismatch
		}
		e.ui.WriteStatus(ui.PhaseError, reason)
	}
	return "", &ValidationError{Field: "mysql password", Attempts: attempts, Reason: reason}
}
