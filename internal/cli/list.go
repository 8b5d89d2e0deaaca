package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deosjr/kanren"
	"github.com/deosjr/kanren/internal/catalog"
)

// QueryInfo describes a catalog query in list output.
type QueryInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Vars        []string `json:"vars" yaml:"vars"`
	Infinite    bool     `json:"infinite,omitempty" yaml:"infinite,omitempty"`
	Description string   `json:"description" yaml:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List catalog queries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			var infos []QueryInfo
			for _, q := range catalog.All() {
				infos = append(infos, QueryInfo{
					Name:        q.Name,
					Vars:        q.Vars,
					Infinite:    q.Infinite,
					Description: q.Description,
				})
			}
			return out.Success(infos, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, info := range infos {
					vars := "(" + strings.Join(info.Vars, " ") + ")"
					if info.Infinite {
						vars += " ∞"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, vars, info.Description)
				}
				tw.Flush()
			})
		},
	}
}

// RelationInfo describes a relation in relations output.
type RelationInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Params     []string `json:"params" yaml:"params"`
	Visibility string   `json:"visibility" yaml:"visibility"`
	Doc        string   `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// NewRelationsCommand creates the relations command.
func NewRelationsCommand(rootOpts *RootOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:           "relations",
		Short:         "List the library relations",
		Long:          "List the exported relations of the kanren library. --all includes local ones.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			rels := kanren.Builtins.Exported()
			if all {
				rels = kanren.Builtins.Relations()
			}
			infos := make([]RelationInfo, 0, len(rels))
			for _, r := range rels {
				params := r.Params
				if params == nil {
					params = []string{}
				}
				infos = append(infos, RelationInfo{
					Name:       r.Name,
					Params:     params,
					Visibility: r.Visibility.String(),
					Doc:        r.Doc,
				})
			}
			return out.Success(infos, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, info := range infos {
					sig := "(" + strings.Join(append([]string{info.Name}, info.Params...), " ") + ")"
					if all {
						sig += "\t" + info.Visibility
					}
					fmt.Fprintf(tw, "%s\t%s\n", sig, info.Doc)
				}
				tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include local relations")
	return cmd
}
