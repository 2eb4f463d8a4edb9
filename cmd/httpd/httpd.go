// Package httpd implements the HTTP API server command.
package httpd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/gofresh/cmd/common"
	"github.com/jonesrussell/gofresh/internal/api"
)

// Cmd represents the httpd command.
var Cmd = &cobra.Command{
	Use:   "httpd",
	Short: "Start the HTTP API server",
	Long: `Httpd serves the resolution engine over HTTP: POST /api/v1/resolve
for one page's date, POST /api/v1/check for a keyword's staleness verdict.
The server runs until interrupted.`,
	RunE: runHTTPD,
}

// Command returns the httpd command for use in the root command.
func Command() *cobra.Command {
	return Cmd
}

func runHTTPD(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	res, err := common.BuildResolver(deps)
	if err != nil {
		return err
	}

	a, _, err := common.BuildAnalyzer(deps)
	if err != nil {
		return err
	}

	handler := api.NewHandler(
		common.BuildFetcher(deps),
		res,
		a,
		deps.Logger,
		deps.Config.App.Name,
		"1.0.0",
	)

	server := api.NewServer(&deps.Config.Server, handler, deps.Logger, deps.Config.App.Debug)
	return server.RunWithGracefulShutdown(cmd.Context())
}
