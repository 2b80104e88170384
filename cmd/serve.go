/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valpere/transgate/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a stub translate endpoint for local development",
	Long: `Serve POST <prefix>/translate with the same request and error contract as
the production router. No translation engine is wired in: every target
language receives a "[translate not wired: ...]" placeholder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		return api.NewServer(api.Placeholder{}, logger).Serve(cmd.Context(), cfg.Listen, cfg.Prefix)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", "", "Listen address (default \":8000\")")
	serveCmd.Flags().String("prefix", "", "Mount prefix of the translate route (default \"/api\")")

	v.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	v.BindPFlag("prefix", serveCmd.Flags().Lookup("prefix"))
}
