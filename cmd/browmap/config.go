package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/browmap/internal/overlay"
	"github.com/philipparndt/browmap/internal/render"
	"github.com/spf13/cobra"
)

var configSide string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the saved overlay configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := global.store(global.logger()).Load()
		return printJSON(cmd, cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(global.store(global.logger()).Path())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the configuration.

Numeric keys: ` + strings.Join(overlay.FieldNames(), ", ") + `
Other keys: targetSide (left|right|both), color (#rrggbb),
mirror, showGuides, showVisagismGrid (true|false).

Numeric shape and transform keys apply to the side given by --side,
or to the saved target side when --side is not set.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := global.store(global.logger())
		if err := st.Remove(); err != nil {
			return err
		}
		cmd.Printf("Removed %s\n", st.Path())
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configSide, "side", "", "edit target for numeric keys (left|right|both)")
	configSetCmd.ValidArgsFunction = completeSetting
	_ = configSetCmd.RegisterFlagCompletionFunc("side", cobra.FixedCompletions([]string{"left", "right", "both"}, cobra.ShellCompDirectiveNoFileComp))
	configCmd.AddCommand(configShowCmd, configPathCmd, configSetCmd, configResetCmd)
	rootCmd.AddCommand(configCmd)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	log := global.logger()
	st := global.store(log)
	model := global.model(st.Load())

	if err := applySetting(model, args[0], args[1], configSide); err != nil {
		return err
	}
	if err := st.Save(model.Config()); err != nil {
		return err
	}
	return printJSON(cmd, model.Config())
}

// applySetting edits one key on model. side, when set, overrides the edit
// target for numeric keys without changing the saved target side.
func applySetting(model *overlay.Model, key, value, side string) error {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return b, nil
	}

	switch key {
	case "targetSide":
		t, err := overlay.ParseTargetSide(value)
		if err != nil {
			return err
		}
		model.SetTargetSide(t)
		return nil
	case "color":
		if _, err := render.ParseHex(value); err != nil {
			return err
		}
		model.SetDisplay(overlay.DisplayPatch{Color: &value})
		return nil
	case "mirror", "showGuides", "showVisagismGrid":
		b, err := parseBool()
		if err != nil {
			return err
		}
		p := overlay.DisplayPatch{}
		switch key {
		case "mirror":
			p.Mirror = &b
		case "showGuides":
			p.ShowGuides = &b
		default:
			p.ShowVisagismGrid = &b
		}
		model.SetDisplay(p)
		return nil
	}

	id, err := overlay.ParseField(key)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	cfg := model.Config()
	target := cfg.TargetSide
	if side != "" {
		if target, err = overlay.ParseTargetSide(side); err != nil {
			return err
		}
	}
	next := overlay.ApplyField(cfg, id, v, target, model.Limits(), model.Policy())
	model.Replace(next)
	return nil
}
