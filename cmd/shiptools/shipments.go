package main

import (
	"fmt"
	"os"

	"shipping-tools/internal/adapters/textenc"
	"shipping-tools/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShipmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipments",
		Short: "Clean sales exports",
	}
	cmd.AddCommand(newShipmentsFilterCmd(a))
	return cmd
}

func newShipmentsFilterCmd(a *app) *cobra.Command {
	var (
		encoding  string
		delimiter string
		bom       bool
	)

	cmd := &cobra.Command{
		Use:   "filter [input [output]]",
		Short: "Keep the export rows shipped by home delivery or free shipping",
		Long: `Reads a sales export, drops continuation lines of multi-item orders and
keeps the header plus every row whose shipping method is accepted. The
output is always UTF-8.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := a.cfg.ShipmentsInput, a.cfg.ShipmentsOutput
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			if encoding == "" {
				encoding = a.cfg.ShipmentsEncoding
			}
			if !cmd.Flags().Changed("bom") {
				bom = a.cfg.OutputBOM
			}

			rules := a.rules.Filter
			if delimiter != "" {
				rules.Delimiter = delimiter
			}

			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read export: %w", err)
			}
			text, err := textenc.Decode(raw, encoding)
			if err != nil {
				return fmt.Errorf("read export %s: %w", input, err)
			}

			res, err := services.FilterShipments(text, rules, a.log)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, textenc.Encode(res.Output, bom), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.log.Info("filtered export written", zap.String("input", input), zap.String("output", output))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Rows considered: %d\n", res.Considered)
			fmt.Fprintf(w, "Rows accepted:   %d\n", res.Accepted)
			fmt.Fprintf(w, "Rows written:    %d\n", res.Written)
			fmt.Fprintf(w, "Lines skipped:   %d\n", len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "source encoding (default $SHIPTOOLS_SHIPMENTS_ENCODING)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "field separator (default from rules)")
	cmd.Flags().BoolVar(&bom, "bom", false, "prefix the output with a UTF-8 byte order mark")
	return cmd
}
