package gitutil

import (
	"context"
	"errors"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
)

// defaultDepth keeps skeleton clones shallow; history is not needed to scaffold a project.
const defaultDepth = 1

// Cloner materializes a source checkout using go-git, without a git binary.
type Cloner struct {
	log      logrus.FieldLogger
	progress io.Writer
	depth    int
}

// NewCloner creates a Cloner. progress receives the remote's sideband output and may be nil.
func NewCloner(log logrus.FieldLogger, progress io.Writer) *Cloner {
	if log == nil {
		panic("log is required")
	}
	return &Cloner{log: log, progress: progress, depth: defaultDepth}
}

// Clone clones url into dir. dir may exist as long as it holds no repository.
func (c *Cloner) Clone(ctx context.Context, url, dir string) error {
	c.log.WithFields(logrus.Fields{"url": url, "dir": dir}).Debug("cloning")

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Depth:    c.depth,
		Progress: c.progress,
	})
	if err != nil {
		return &CloneError{URL: url, Dir: dir, Cause: err}
	}
	return nil
}

// IsCheckout reports whether dir already holds a git repository.
func (c *Cloner) IsCheckout(dir string) bool {
	_, err := git.PlainOpen(dir)
	if err != nil && !errors.Is(err, git.ErrRepositoryNotExists) {
		c.log.WithError(err).WithField("dir", dir).Debug("cannot open repository")
	}
	return err == nil
}
