/*
Copyright 2024 Dala Authors.

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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pawapay "github.com/dala-io/pawapay-go"
	"github.com/dala-io/pawapay-go/config"
)

// CLI wraps the root cobra command for the pawapay tool.
type CLI struct {
	cmd *cobra.Command
}

// cliInstance holds the SDK service and its configuration for use by
// subcommands.
type cliInstance struct {
	svc *pawapay.PawaPay
	cnf *config.Configuration
}

// recoverPanic handles any panics during execution and logs the error.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads configuration and builds the SDK service before any
// subcommand executes.
func preRun(app *cliInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		svc, err := pawapay.New(cnf)
		if err != nil {
			return err
		}

		app.svc = svc
		app.cnf = cnf
		return nil
	}
}

// printJSON renders a command result as indented JSON on stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// NewCLI creates the command-line interface for the pawapay SDK: submit and
// resolve transactions, and query wallet metadata, from the terminal.
func NewCLI() *CLI {
	var configFile string
	app := &cliInstance{}

	var rootCmd = &cobra.Command{
		Use:   "pawapay",
		Short: "Mobile money payments from the command line",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./pawapay.json", "Configuration file for the pawapay client")
	rootCmd.PersistentPreRunE = preRun(app, &configFile)

	rootCmd.AddCommand(depositCommands(app))
	rootCmd.AddCommand(payoutCommands(app))
	rootCmd.AddCommand(refundCommands(app))
	rootCmd.AddCommand(statusCommands(app))
	rootCmd.AddCommand(resolveCommands(app))
	rootCmd.AddCommand(balancesCommands(app))
	rootCmd.AddCommand(predictCommands(app))

	return &CLI{cmd: rootCmd}
}

func (c CLI) executeCLI() {
	if err := c.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
