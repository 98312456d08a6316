// Package git implements the version-control port with the git CLI.
package git

import (
	"context"
	"strings"

	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VCS = (*Client)(nil)

// Client runs git subcommands through an executor.
type Client struct {
	executor ports.Executor
}

// NewClient creates a new Client.
func NewClient(executor ports.Executor) *Client {
	return &Client{executor: executor}
}

func (c *Client) command(root string, args ...string) domain.Command {
	return domain.Command{
		Name: domain.ToolGit,
		Args: append([]string{"-C", root}, args...),
	}
}

// TopLevel returns the root of the working tree containing dir.
func (c *Client) TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := c.executor.Output(ctx, c.command(dir, "rev-parse", "--show-toplevel"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to locate repository root"), "dir", dir)
	}
	return strings.TrimSpace(string(out)), nil
}

// Head returns the commit id HEAD points at.
func (c *Client) Head(ctx context.Context, root string) (domain.Revision, error) {
	out, err := c.executor.Output(ctx, c.command(root, "rev-list", "HEAD", "--max-count=1"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to query HEAD"), "root", root)
	}

	head := strings.TrimSpace(string(out))
	if head == "" {
		return "", zerr.With(domain.ErrHeadUnresolved, "root", root)
	}
	return domain.Revision(head), nil
}

// ResolveCommit resolves rev to the full id of the commit it names.
func (c *Client) ResolveCommit(ctx context.Context, root string, rev domain.Revision) (domain.Revision, error) {
	out, err := c.executor.Output(ctx, c.command(root,
		"rev-parse", "--verify", "--end-of-options", rev.String()+"^{commit}",
	))
	if err != nil {
		return "", zerr.With(
			zerr.Wrap(domain.ErrInvalidRevision, "revision does not name a commit"),
			"revision", rev.String(),
		)
	}

	commit := strings.TrimSpace(string(out))
	if commit == "" {
		return "", zerr.With(
			zerr.Wrap(domain.ErrInvalidRevision, "revision does not name a commit"),
			"revision", rev.String(),
		)
	}
	return domain.Revision(commit), nil
}

// AddWorktree checks rev out into dir as a detached linked worktree.
func (c *Client) AddWorktree(ctx context.Context, root, dir string, rev domain.Revision) error {
	if err := c.executor.Run(ctx, c.command(root, "worktree", "add", "--detach", dir, rev.String())); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to add worktree"), "dir", dir), "revision", rev.String())
	}
	return nil
}

// PruneWorktrees removes registrations of worktrees whose directories no longer exist.
func (c *Client) PruneWorktrees(ctx context.Context, root string) error {
	if err := c.executor.Run(ctx, c.command(root, "worktree", "prune")); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to prune worktrees"), "root", root)
	}
	return nil
}
