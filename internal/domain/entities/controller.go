package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra command metadata for a controller.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point bound to one subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}

// FlagController is implemented by controllers that take subcommand-specific
// flags (names, version target, consumer filter).
type FlagController interface {
	Controller
	AddFlags(cmd *cobra.Command)
}
