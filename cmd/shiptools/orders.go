package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"shipping-tools/internal/adapters/cache"
	"shipping-tools/internal/adapters/textenc"
	"shipping-tools/internal/bootstrap"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/ports"
	"shipping-tools/internal/services"

	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Work with order rows of sales exports",
	}
	cmd.AddCommand(newOrdersResolveCmd(a))
	return cmd
}

func newOrdersResolveCmd(a *app) *cobra.Command {
	var (
		encoding string
		output   string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [input]",
		Short: "Resolve the destination branch of every order in a sales export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.ShipmentsInput
			if len(args) > 0 {
				input = args[0]
			}
			if encoding == "" {
				encoding = a.cfg.ShipmentsEncoding
			}

			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			text, err := textenc.Decode(raw, encoding)
			if err != nil {
				return fmt.Errorf("read export %s: %w", input, err)
			}

			ctx := cmd.Context()
			repo, store, release, err := a.branchRepository(ctx)
			if err != nil {
				return err
			}
			defer release()

			dir, err := bootstrap.LoadDirectory(ctx, repo, a.rules.Lookup, a.log)
			if err != nil {
				return err
			}

			var lookupCache ports.ResolutionCache
			switch {
			case noCache:
			case store != nil:
				lookupCache = store.ResolutionCache()
			default:
				lookupCache = cache.NewMemoryResolutionCache()
			}

			resolved, err := services.ResolveOrders(ctx, text, a.rules.Filter, a.rules.Orders, dir, lookupCache, a.log)
			if err != nil {
				return err
			}

			// Rendered in memory so a failure leaves no partial file.
			var buf bytes.Buffer
			if err := writeResolutions(&buf, resolved); err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "source encoding (default $SHIPTOOLS_SHIPMENTS_ENCODING)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output file (default stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not read or store cached lookups")
	return cmd
}

var resolutionHeader = []string{
	"line", "order_id", "locality", "province", "province_code", "postal_code", "branch_code", "stage", "cached",
}

func writeResolutions(w io.Writer, resolved []domain.OrderResolution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resolutionHeader); err != nil {
		return err
	}
	for _, r := range resolved {
		err := cw.Write([]string{
			strconv.Itoa(r.Line),
			r.OrderID,
			r.Locality,
			r.Province,
			services.ProvinceCode(r.Province),
			r.PostalCode,
			r.Match.Code,
			string(r.Match.Stage),
			strconv.FormatBool(r.Cached),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
