package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/pkg/dom"
)

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [NAME]",
		Short: "List element kinds, or the attributes of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tEMPTY\tATTRIBUTES")
				for _, k := range dom.DefaultRegistry.Kinds() {
					fmt.Fprintf(tw, "%s\t%t\t%d\n", k.Name, k.Empty, len(k.ElementAttributes))
				}
				return tw.Flush()
			}

			k, ok := dom.DefaultRegistry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", dom.ErrUnknownKind, args[0])
			}
			fmt.Fprintf(out, "%s\n", k.Name)
			if k.Empty {
				fmt.Fprintln(out, "  empty: cannot have children")
			}
			if k.AnyAttribute {
				fmt.Fprintln(out, "  accepts any attribute")
			}
			fmt.Fprintf(out, "  element attributes: %s\n", keys(k.ElementAttributes))
			fmt.Fprintf(out, "  global attributes:  %d\n", len(k.GlobalAttributes))
			return nil
		},
	}
}

func keys(s dom.Schema) string {
	if len(s) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	slices.Sort(names)
	return strings.Join(names, " ")
}
