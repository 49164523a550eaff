// ABOUTME: Serve command runs the HTTP router
// ABOUTME: POST /handle with {"msg": "..."} until SIGINT or SIGTERM
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/harper/tag-router/internal/httpapi"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP router",
		Long: `Start the HTTP router

Serves POST /handle with a JSON body {"msg": "..."} and replies with
{"reply": "..."}. Also serves GET /health and GET /metrics.`,
		Example: `  # Listen on the configured address (ROUTER_ADDR, default 0.0.0.0:5000)
  router serve

  # Override the address
  router serve --addr 127.0.0.1:8080

  # Send a message
  curl -s localhost:5000/handle -d '{"msg": "[Io] what happened to issue 12?"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = rt.cfg.Addr
			}
			gin.SetMode(rt.cfg.GinMode)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpapi.NewServer(rt.dispatcher, rt.metrics, rt.logger)
			return srv.Run(ctx, addr, rt.cfg.BackendTimeout+httpapi.WriteTimeoutSlack)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides ROUTER_ADDR)")

	return cmd
}
