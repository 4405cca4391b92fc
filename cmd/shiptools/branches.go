package main

import (
	"fmt"
	"os"
	"path/filepath"

	"shipping-tools/internal/bootstrap"
	"shipping-tools/internal/codegen"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBranchesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches",
		Short: "Build, store and query the post-office branch directory",
	}
	cmd.AddCommand(
		newBranchesGenerateCmd(a),
		newBranchesLookupCmd(a),
		newBranchesSeedCmd(a),
	)
	return cmd
}

func newBranchesGenerateCmd(a *app) *cobra.Command {
	var source, out, pkg, varName string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the embedded Go branch table from a CSV or XLSX listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = a.cfg.BranchesSource
			}
			if out == "" {
				out = a.cfg.GeneratedPath
			}

			branches, rep, err := bootstrap.ReadListing(a.cfg, source)
			if err != nil {
				return err
			}

			src, err := codegen.Generate(branches, codegen.Options{
				Package: pkg,
				VarName: varName,
				Source:  filepath.Base(source),
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			a.log.Info("branch table generated",
				zap.String("source", source),
				zap.String("out", out),
				zap.Int("rows", rep.Rows),
				zap.Int("skipped", rep.Skipped),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d branches (%d rows skipped)\n", out, rep.Loaded, rep.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "branch listing (.csv or .xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "generated Go file")
	cmd.Flags().StringVar(&pkg, "package", "branchdata", "package of the generated file")
	cmd.Flags().StringVar(&varName, "var", "Branches", "name of the generated variable")
	return cmd
}

func newBranchesLookupCmd(a *app) *cobra.Command {
	var q domain.BranchQuery

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find the branch code for a locality and province",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, release, err := a.branchRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			dir, err := bootstrap.LoadDirectory(cmd.Context(), repo, a.rules.Lookup, a.log)
			if err != nil {
				return err
			}

			m := dir.Find(q)
			if !m.Found() {
				return fmt.Errorf("no branch found for %q, %q", q.Locality, q.Province)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.Code, m.Stage, services.ProvinceCode(q.Province))
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Locality, "locality", "", "requested locality")
	cmd.Flags().StringVar(&q.Province, "province", "", "requested province")
	cmd.Flags().StringVar(&q.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&q.Address, "address", "", "street address, used to pick between branches")
	_ = cmd.MarkFlagRequired("province")
	return cmd
}

func newBranchesSeedCmd(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a branch listing in the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = a.cfg.BranchesSource
			}

			branches, rep, err := bootstrap.ReadListing(a.cfg, source)
			if err != nil {
				return err
			}

			store, err := bootstrap.OpenStore(a.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.InitSchema(cmd.Context()); err != nil {
				return err
			}
			if err := store.SeedBranches(cmd.Context(), branches); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d branches (%d rows skipped)\n", len(branches), rep.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "branch listing (.csv or .xlsx)")
	return cmd
}
