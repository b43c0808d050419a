package main

import (
	"github.com/rgehrsitz/fvgo/internal/api"
	"github.com/spf13/cobra"
)

func serveCmd(a *app) *cobra.Command {
	var listen string
	var noStore bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = a.settings.Listen
			}

			var srv *api.Server
			if noStore {
				srv = api.NewServer(a.engine, nil, a.logger, a.settings.RateLimit, a.settings.RateBurst)
			} else {
				st, err := a.openStore()
				if err != nil {
					return err
				}
				defer st.Close()
				srv = api.NewServer(a.engine, st, a.logger, a.settings.RateLimit, a.settings.RateBurst)
			}
			return srv.ListenAndServe(listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from settings)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Disable the saved calculation routes")
	return cmd
}
