package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/hostel-desk/internal/app"
	"github.com/pkordes/hostel-desk/internal/config"
	"github.com/pkordes/hostel-desk/internal/contract"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/service"
)

type contractOptions struct {
	template string
	out      string
	set      []string
	stay     int64
	force    bool
}

func newContractCmd(c *cli) *cobra.Command {
	var o contractOptions

	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Fill the contract template and save the document",
		Long: "Fill a .docx contract template.\n\n" +
			"With --stay the well-known placeholders come from that stay and --set\n" +
			"entries override them. Without --stay only --set entries are used.\n" +
			"--out may name a file or a directory; a directory receives the suggested\n" +
			"\"Termo <reservation> <year> <guest>.docx\" name. An existing file is left\n" +
			"untouched unless --force is given.",
		Example: "  desk contract --template contrato.docx --set {{nome}}=Maria --set {{quarto}}=101\n" +
			"  desk contract --stay 42 --out contratos/",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContract(cmd, c, o)
		},
	}

	cmd.Flags().StringVarP(&o.template, "template", "t", "", "Path of the .docx template (defaults to CONTRACT_TEMPLATE)")
	cmd.Flags().StringVarP(&o.out, "out", "o", ".", "Destination file or directory")
	cmd.Flags().StringArrayVar(&o.set, "set", nil, "Placeholder as key=value; repeatable, applied in order")
	cmd.Flags().Int64Var(&o.stay, "stay", 0, "Take placeholders from this stay")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false, "Overwrite an existing destination file")
	return cmd
}

func runContract(cmd *cobra.Command, c *cli, o contractOptions) error {
	extra, err := parsePlaceholders(o.set)
	if err != nil {
		return err
	}

	var (
		cfg config.Config
		gen service.Contract
	)
	if o.stay > 0 {
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if o.template != "" {
			cfg.ContractTemplate = o.template
		}
		a, err := app.New(cmd.Context(), cfg, c.logger, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		if gen, err = a.Contracts.ForStay(cmd.Context(), o.stay, extra); err != nil {
			return err
		}
	} else {
		if cfg, err = config.LoadOffline(); err != nil {
			return err
		}
		if o.template != "" {
			cfg.ContractTemplate = o.template
		}
		engine := contract.New(cfg.ContractFont, cfg.ContractFontSize, cfg.ContractMode)
		svc := service.NewContractService(nil, engine, cfg.ContractTemplate, nil, nil, c.logger)
		if gen, err = svc.Fill(cmd.Context(), extra); err != nil {
			return err
		}
	}

	dest, err := destination(o.out, gen.Filename)
	if err != nil {
		return err
	}
	if !o.force {
		if _, err := os.Stat(dest); err == nil {
			c.logger.Info("contract not saved: destination exists, use --force to overwrite", "path", dest)
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}
	if err := contract.Save(dest, gen.Document); err != nil {
		return err
	}
	fmt.Fprintln(c.out, dest)
	return nil
}

// parsePlaceholders turns key=value pairs into placeholders, keeping order.
// Only the first '=' splits, so values may contain '='.
func parsePlaceholders(pairs []string) (domain.Placeholders, error) {
	var out domain.Placeholders
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %s: want key=value: %w", strconv.Quote(pair), domain.ErrValidation)
		}
		out = out.Set(key, value)
	}
	return out, nil
}

// destination resolves --out. An existing directory, or a path ending in a
// separator, receives the suggested file name.
func destination(out, suggested string) (string, error) {
	if out == "" {
		out = "."
	}
	if strings.HasSuffix(out, string(filepath.Separator)) || strings.HasSuffix(out, "/") {
		return filepath.Join(out, suggested), nil
	}
	info, err := os.Stat(out)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(out, suggested), nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return out, nil
	default:
		return "", fmt.Errorf("--out: %w", err)
	}
}
