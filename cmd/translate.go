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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/transgate/internal/gate"
	"github.com/valpere/transgate/internal/submit"
	"github.com/valpere/transgate/internal/widget"
)

var (
	text       string
	sourceLang string
	targets    string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Send text to the translate endpoint and print the result",
	Long: `Fill in the translate form and press Translate.

The request is POSTed as JSON to <base-url><endpoint>. On success the JSON
response is printed pretty-printed; on an HTTP error the line
"Error <status>: <message>" is printed instead.

Examples:
  transgate translate --targets ru,uk "hello"
  transgate translate -s de -t en --text "Guten Tag" --endpoint /v1/translate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		if text == "" {
			text = strings.Join(args, " ")
		}

		page, doc := widget.NewPage(cfg.IdleLabel)
		gate.AttachDocument(doc)

		h := submit.New(submit.FromDocument(doc), cfg.Submit(), logger)

		var submitErr error
		h.Bind(cmd.Context(), func(err error) { submitErr = err })

		page.SourceLang.Commit(sourceLang)
		page.TargetLangs.Commit(targets)
		page.SourceText.Type(text)

		if !page.TranslateBtn.Click() {
			return fmt.Errorf("nothing to translate")
		}
		if submitErr != nil {
			return submitErr
		}

		if !page.ResultArea.Hidden() {
			fmt.Fprintln(cmd.OutOrStdout(), page.ResultContent.Text())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&text, "text", "", "Text to translate (defaults to the positional arguments)")
	translateCmd.Flags().StringVarP(&sourceLang, "source-lang", "s", "", "Source language code (default \"en\")")
	translateCmd.Flags().StringVarP(&targets, "targets", "t", "", "Comma-separated target language codes, e.g. ru,uk")

	translateCmd.Flags().String("base-url", "", "Base URL of the translate server")
	translateCmd.Flags().String("endpoint", "", "Endpoint path; must match the server's mount prefix")
	translateCmd.Flags().Duration("timeout", 0, "HTTP timeout (0 = none)")

	v.BindPFlag("base_url", translateCmd.Flags().Lookup("base-url"))
	v.BindPFlag("endpoint", translateCmd.Flags().Lookup("endpoint"))
	v.BindPFlag("timeout", translateCmd.Flags().Lookup("timeout"))
}
