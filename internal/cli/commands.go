package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"reflectkit/accessor"
	"reflectkit/internal/analyze"
	"reflectkit/internal/common"
)

func (a *app) newFieldsCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "fields <package> <Type>",
		Short: "List the fields of a struct",
		Long: `List the fields of a struct in declaration order. With --all the fields of
embedded ancestors follow, breadth first. Names in the ignore list are skipped,
by default the XXX_ fields of generated code.`,
		Example: `  reflectkit fields ./internal/fixture Member --all
  reflectkit fields ./internal/fixture Person --ignore XXX_sizecache,About`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := a.load(args[0])
			if err != nil {
				return err
			}

			id, err := a.resolve(analyzer, args[1])
			if err != nil {
				return err
			}

			views, err := analyzer.Fields(id, all, a.cfg.Ignore)
			if err != nil {
				return err
			}

			return a.printFields(cmd, id, views)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include the fields of embedded ancestors")
	cmd.Flags().StringSlice("ignore", nil, "field names to skip (replaces the configured list)")
	_ = a.v.BindPFlag("ignore", cmd.Flags().Lookup("ignore"))

	return cmd
}

func (a *app) printFields(cmd *cobra.Command, id analyze.TypeID, views []analyze.FieldView) error {
	name := common.Qualify(id.PkgPath, id.Name)

	if a.cfg.Format == FormatYAML {
		return writeYAML(cmd.OutOrStdout(), struct {
			Type   string              `yaml:"type"`
			Fields []analyze.FieldView `yaml:"fields"`
		}{name, views})
	}

	table := NewTable(cmd.OutOrStdout(), name, []string{"FIELD", "TYPE", "OWNER", "EXPORTED", "FINAL"}, a.cfg.NoColor)
	for _, f := range views {
		table.AddRow(f.Name, f.Type, f.Owner, yesNo(f.Exported), yesNo(f.Final))
	}
	table.Render()

	return nil
}

func (a *app) newAccessorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accessors <package> <Type>",
		Short: "List the getters and setters of a type",
		Long: `List the methods callable on a pointer to the type that are getters
(Get<Name> with results, Is<Name> returning bool) or setters (Set<Name> with
one parameter).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := a.load(args[0])
			if err != nil {
				return err
			}

			id, err := a.resolve(analyzer, args[1])
			if err != nil {
				return err
			}

			views, err := analyzer.Accessors(id)
			if err != nil {
				return err
			}

			name := common.Qualify(id.PkgPath, id.Name)
			if a.cfg.Format == FormatYAML {
				return writeYAML(cmd.OutOrStdout(), struct {
					Type      string                 `yaml:"type"`
					Accessors []analyze.AccessorView `yaml:"accessors"`
				}{name, views})
			}

			table := NewTable(cmd.OutOrStdout(), name, []string{"METHOD", "KIND", "PROPERTY"}, a.cfg.NoColor)
			for _, v := range views {
				table.AddRow(v.Method, v.Kind, v.Property)
			}
			table.Render()

			return nil
		},
	}
}

type bindingView struct {
	Field  string `yaml:"field"`
	Getter string `yaml:"getter,omitempty"`
	Setter string `yaml:"setter,omitempty"`
}

func (a *app) newBindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <package> <Type>",
		Short: "Pair the fields of a struct with their accessors",
		Long: `Pair every field of the struct, promoted fields included, with the getter
and setter of the property of the same name. Names are compared after
normalization, so the field userID is read by GetUserId.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := a.load(args[0])
			if err != nil {
				return err
			}

			id, err := a.resolve(analyzer, args[1])
			if err != nil {
				return err
			}

			views, err := analyzer.Fields(id, true, a.cfg.Ignore)
			if err != nil {
				return err
			}

			names := make([]string, len(views))
			for i, f := range views {
				names[i] = f.Name
			}

			var sigs []accessor.Signature
			for _, m := range analyzer.Graph().GetType(id).Methods {
				sigs = append(sigs, m.Signature())
			}

			bindings := accessor.Bind(names, sigs)
			out := make([]bindingView, len(bindings))
			for i, b := range bindings {
				out[i] = bindingView(b)
			}

			name := common.Qualify(id.PkgPath, id.Name)
			if a.cfg.Format == FormatYAML {
				return writeYAML(cmd.OutOrStdout(), struct {
					Type     string        `yaml:"type"`
					Bindings []bindingView `yaml:"bindings"`
				}{name, out})
			}

			table := NewTable(cmd.OutOrStdout(), name, []string{"FIELD", "GETTER", "SETTER"}, a.cfg.NoColor)
			for _, b := range out {
				table.AddRow(b.Field, orDash(b.Getter), orDash(b.Setter))
			}
			table.Render()

			return nil
		},
	}
}

type typeView struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

func (a *app) newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types <package>",
		Short: "List the exported named types of packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := a.load(args[0])
			if err != nil {
				return err
			}

			graph := analyzer.Graph()
			paths := slices.Sorted(maps.Keys(graph.Packages))
			if common.IsEmpty(paths) {
				return fmt.Errorf("%w: %s", ErrNoPackages, args[0])
			}

			listing := make(map[string][]typeView, len(paths))
			for _, path := range paths {
				for _, id := range graph.Packages[path].Types {
					listing[path] = append(listing[path], typeView{
						Name: id.Name,
						Kind: graph.GetType(id).Kind.String(),
					})
				}
			}

			if a.cfg.Format == FormatYAML {
				return writeYAML(cmd.OutOrStdout(), listing)
			}

			for _, path := range paths {
				table := NewTable(cmd.OutOrStdout(), path, []string{"TYPE", "KIND"}, a.cfg.NoColor)
				for _, t := range listing[path] {
					table.AddRow(t.Name, t.Kind)
				}
				table.Render()
			}

			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
