package provision

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Cyclone1070/larastack/internal/render"
	"github.com/Cyclone1070/larastack/internal/tool/shell"
	"github.com/Cyclone1070/larastack/internal/ui"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const artifactPerm = 0o644

func (e *Engine) cloneSource(ctx context.Context, pc *Context) (Outcome, error) {
	if err := e.fs.ChangeDir(pc.Path); err != nil {
		if !isNotFound(err) {
			return Abort, err
		}
		if outcome, err := e.policy.CheckMissing(ctx, pc.Path); outcome == Abort || err != nil {
			return outcome, err
		}
		if outcome, err := e.makeDir(ctx, pc.Path); outcome == Abort || err != nil {
			return outcome, err
		}
		if err := e.fs.ChangeDir(pc.Path); err != nil {
			return Abort, err
		}
	}

	if outcome, err := e.makeDir(ctx, pc.Root); outcome == Abort || err != nil {
		return outcome, err
	}

	if e.cloner.IsCheckout(pc.Root) {
		e.ui.WriteStatus(ui.PhaseInfo, fmt.Sprintf("Using existing checkout in %s", pc.Root))
	} else {
		url := e.cfg.Source.RepositoryURL
		err := e.ui.RunTask(ctx, "Cloning "+url, func(ctx context.Context) error {
			return e.cloner.Clone(ctx, url, pc.Root)
		})
		if err != nil {
			return Abort, err
		}
	}

	return Continue, e.fs.ChangeDir(pc.Root)
}

func (e *Engine) installDependencies(ctx context.Context, pc *Context) (Outcome, error) {
	err := e.ui.RunTask(ctx, "Installing dependencies", func(ctx context.Context) error {
		_, err := e.launcher.Run(ctx, shell.ComposerInstallCommand(pc.Root), pc.Root)
		return err
	})
	if err != nil {
		return Abort, err
	}

	if !e.cfg.Commands.FixOwnership || e.owner == "" {
		e.log.WithField("root", pc.Root).Debug("ownership fix skipped")
		return Continue, nil
	}
	if _, err := e.launcher.Run(ctx, shell.ChownCommand(e.owner, pc.Root), pc.Root); err != nil {
		return Abort, err
	}
	return Continue, nil
}

func (e *Engine) writeCompose(ctx context.Context, pc *Context) (Outcome, error) {
	if err := e.gatherSettings(ctx, pc); err != nil {
		return Abort, err
	}

	values := map[render.Placeholder]string{
		render.WorkingDir:        pc.WorkingDir,
		render.AppExternalPort:   fmt.Sprint(pc.AppPort),
		render.MysqlExternalPort: fmt.Sprint(pc.DBPort),
		render.MysqlDatabase:     pc.DBName,
		render.MysqlRootPassword: pc.DBPassword,
	}
	return Continue, e.renderArtifact(pc, render.Compose, values, "docker-compose.yml", validateCompose)
}

func (e *Engine) writeDockerfile(ctx context.Context, pc *Context) (Outcome, error) {
	values := map[render.Placeholder]string{render.WorkingDir: pc.WorkingDir}
	return Continue, e.renderArtifact(pc, render.Dockerfile, values, "Dockerfile", nil)
}

func (e *Engine) writeAppSettings(ctx context.Context, pc *Context) (Outcome, error) {
	if outcome, err := e.makeDir(ctx, filepath.Join(pc.Root, "php")); outcome == Abort || err != nil {
		return outcome, err
	}
	return Continue, e.writeArtifact(pc, filepath.Join("php", "local.ini"), []byte(e.cfg.Build.Settings.App))
}

func (e *Engine) writeWebServer(ctx context.Context, pc *Context) (Outcome, error) {
	if outcome, err := e.makeDir(ctx, filepath.Join(pc.Root, "nginx")); outcome == Abort || err != nil {
		return outcome, err
	}
	if err := e.fs.EnsureDirs(filepath.Join(pc.Root, "nginx", "conf.d")); err != nil {
		return Abort, err
	}
	return Continue, e.renderArtifact(pc, render.WebServer, nil, filepath.Join("nginx", "conf.d", "app.conf"), nil)
}

func (e *Engine) writeDatabaseSettings(ctx context.Context, pc *Context) (Outcome, error) {
	if outcome, err := e.makeDir(ctx, filepath.Join(pc.Root, "mysql")); outcome == Abort || err != nil {
		return outcome, err
	}
	return Continue, e.writeArtifact(pc, filepath.Join("mysql", "my.cnf"), []byte(e.cfg.Build.Settings.Database))
}

func (e *Engine) writeEnv(ctx context.Context, pc *Context) (Outcome, error) {
	values := map[render.Placeholder]string{
		render.DBName:        pc.DBName,
		render.MysqlPassword: pc.DBPassword,
	}
	return Continue, e.renderArtifact(pc, render.Env, values, ".env", validateEnv)
}

func (e *Engine) launch(ctx context.Context, pc *Context) (Outcome, error) {
	if err := e.fs.ChangeDir(pc.Root); err != nil {
		return Abort, err
	}

	err := e.ui.RunTask(ctx, "Checking Docker", func(ctx context.Context) error {
		return e.launcher.Preflight(ctx, pc.Root, e.cfg.Commands.MinComposeVersion)
	})
	if err != nil {
		return Abort, err
	}

	tasks := []struct {
		title   string
		command []string
	}{
		{"Building images", shell.ComposeCommand("build")},
		{"Starting containers", shell.ComposeCommand("up", "-d")},
		{"Generating application key", shell.ArtisanCommand("key:generate")},
		{"Caching configuration", shell.ArtisanCommand("config:cache")},
	}
	for _, task := range tasks {
		err := e.ui.RunTask(ctx, task.title, func(ctx context.Context) error {
			resp, err := e.launcher.Run(ctx, task.command, pc.Root)
			if resp != nil {
				pc.Notes = append(pc.Notes, resp.Notes...)
			}
			return err
		})
		if err != nil {
			return Abort, err
		}
	}

	for _, note := range pc.Notes {
		e.ui.WriteStatus(ui.PhaseInfo, note)
	}
	e.ui.WriteStatus(ui.PhaseSuccess, "Installation completed successfully")
	e.ui.WriteStatus(ui.PhaseSuccess, fmt.Sprintf("The project is available at the link http://localhost:%d", pc.AppPort))
	e.ui.WriteMessage(summary(pc))
	return Continue, nil
}

// renderArtifact renders tmpl with values, checks the result and writes it under the root.
func (e *Engine) renderArtifact(pc *Context, tmpl render.Template, values map[render.Placeholder]string, rel string, validate func(string) error) error {
	text, err := pc.Source.Read(tmpl)
	if err != nil {
		return fmt.Errorf("failed to read %s template from %s: %w", tmpl.Kind, pc.Source.Describe(), err)
	}
	bindings, err := tmpl.Bind(values)
	if err != nil {
		return err
	}

	if a := tmpl.Analyze(text, bindings); !a.Clean() {
		e.log.WithFields(logrus.Fields{
			"template":   tmpl.Kind,
			"missing":    a.Missing,
			"unresolved": a.Unresolved,
		}).Warn("template placeholders do not match")
	}

	out := render.Render(text, bindings)
	if validate != nil {
		if err := validate(out); err != nil {
			return &ArtifactError{Name: rel, Cause: err}
		}
	}
	return e.writeArtifact(pc, rel, []byte(out))
}

func (e *Engine) writeArtifact(pc *Context, rel string, content []byte) error {
	if err := e.fs.WriteFileAtomic(filepath.Join(pc.Root, rel), content, artifactPerm); err != nil {
		return err
	}
	pc.Written = append(pc.Written, rel)
	return nil
}

func validateCompose(text string) error {
	var doc struct {
		Services map[string]any `yaml:"services"`
	}
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return err
	}
	if len(doc.Services) == 0 {
		return errors.New("no services defined")
	}
	return nil
}

func validateEnv(text string) error {
	_, err := shell.ParseEnv(".env", text)
	return err
}
