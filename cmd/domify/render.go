package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/internal/document"
	clierrors "github.com/domify-dev/domify/internal/errors"
	"github.com/domify-dev/domify/pkg/diag"
	"github.com/domify-dev/domify/pkg/dom"
	"github.com/domify-dev/domify/pkg/render"
)

func renderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a YAML document to HTML",
		Long: `Render a YAML document to HTML on stdout, or to --output.

Attribute warnings are logged. With --strict the command fails after
rendering if any were reported.`,
		Args: fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, warnings, err := a.load(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				err = a.render(cmd, cmd.OutOrStdout(), root)
			} else {
				err = a.renderFile(cmd, output, root)
			}
			if err != nil {
				return err
			}
			return a.finish(cmd, warnings)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to a file")

	return cmd
}

// load builds a document, logging warnings and collecting them for strict
// mode.
func (a *app) load(path string, extra ...dom.Reporter) (*dom.Node, *diag.Collector, error) {
	warnings := &diag.Collector{}
	reporters := append([]dom.Reporter{dom.LogReporter{Logger: a.logger}, warnings}, extra...)
	root, err := document.Load(path, document.WithReporter(diag.Multi(reporters...)))
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("document loaded", "file", path, "warnings", warnings.Len())
	return root, warnings, nil
}

func (a *app) render(cmd *cobra.Command, w io.Writer, root *dom.Node) error {
	bw := bufio.NewWriter(w)
	r := render.NewRenderer(a.cfg.RendererConfig())
	err := r.RenderContext(cmd.Context(), bw, root)
	if err == nil && !a.cfg.Pretty {
		err = bw.WriteByte('\n')
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return clierrors.FromError(err, "R001")
	}
	return nil
}

// renderFile renders into path. The file is closed before returning so a
// failed close is reported like a failed write.
func (a *app) renderFile(cmd *cobra.Command, path string, root *dom.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return clierrors.FromError(err, "R001")
	}
	err = a.render(cmd, f, root)
	if cerr := f.Close(); cerr != nil && err == nil {
		return clierrors.FromError(cerr, "R001")
	}
	return err
}

func (a *app) checkStrict(warnings *diag.Collector) error {
	if !a.cfg.Strict || warnings.Len() == 0 {
		return nil
	}
	return clierrors.New("R002").
		Wrap(warnings.Err()).
		WithDetailf("%d attribute warning(s) reported", warnings.Len()).
		WithSuggestion("fix the attributes logged above or drop --strict")
}

// finish fails in strict mode and otherwise summarizes the warnings on
// stderr.
func (a *app) finish(cmd *cobra.Command, warnings *diag.Collector) error {
	if err := a.checkStrict(warnings); err != nil {
		return err
	}
	if n := warnings.Len(); n > 0 {
		clierrors.Warnf(cmd.ErrOrStderr(), "%d attribute warning(s) reported; --strict makes them fatal", n)
	}
	return nil
}

func treeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the node outline of a YAML document",
		Args:  fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, warnings, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Tree(root))
			return a.finish(cmd, warnings)
		},
	}
}
