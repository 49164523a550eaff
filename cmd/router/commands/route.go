// ABOUTME: Route command dispatches a single message from the command line
// ABOUTME: Reads the message from args or stdin and prints the backend reply
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/models"
	"github.com/spf13/cobra"
)

// NewRouteCmd creates the route command
func NewRouteCmd() *cobra.Command {
	var tagName string

	cmd := &cobra.Command{
		Use:   "route [message...]",
		Short: "Route one message and print the reply",
		Long: `Route one message and print the reply.

The message is taken from the arguments, or from stdin when none are given.
With --tag the marker detection is skipped and the named backend is used.`,
		Example: `  router route "[Io] what happened to issue 12?"
  echo "[Lumo] what's blocked this week?" | router route
  router route --tag copilot "write a parser"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				message = string(data)
			}
			message = strings.TrimSpace(message)

			rt, err := loadRuntime()
			if err != nil {
				return err
			}

			var res core.Result
			if tagName != "" {
				tag, err := models.ParseTag(tagName)
				if err != nil {
					return err
				}
				if message == "" {
					return models.ErrEmptyMessage
				}
				res = rt.dispatcher.Dispatch(cmd.Context(), models.Routed(tag), message)
			} else {
				res, err = rt.dispatcher.RouteAndDispatch(cmd.Context(), message)
				if err != nil {
					return err
				}
			}

			if res.Failed() {
				return errors.New(res.Reply)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&tagName, "tag", "", "Send to this backend (Io, Lumo, Copilot) without detection")

	return cmd
}
