package cli

import (
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/localfetch"
)

// =============================================================================
// Serve Command
// =============================================================================

// defaultServeAddr is where serve listens, matching the engine-side service
// port so clients need no reconfiguration.
const defaultServeAddr = ":1500"

// serveCommand creates the serve command for the stand-in export service.
func (c *CLI) serveCommand() *cobra.Command {
	var dir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a local export tree over HTTP",
		Long: `Serve exposes a directory of exported JSON documents over the same HTTP
interface as the engine-side export service. It lets import and asset
recovery run on workstations where the engine is not running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				d, err := c.exportDir()
				if err != nil {
					return err
				}
				dir = d
			}

			printInfo("Serving %s on %s", dir, addr)
			printNextStep("Import against it", appName+" import /Game/Materials/M_Rock")

			srv := localfetch.NewServer(dir, loggerFromContext(cmd.Context()))
			return srv.Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "export tree to serve (default: the configured export dir)")
	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")

	return cmd
}
