/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mapstack/atlas/cmd/dependency"
	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/manager"
	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/pkg/atlaspath"
	"github.com/mapstack/atlas/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "atlas",
	Short: "the map publishing server of atlas",
	Long: `Atlas is a long-running server publishing versioned interactive map and building
visualizations. It tiles raster base maps into multi-resolution pyramids, assembles
immutable checksummed release manifests and streams build progress over SSE.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Initialize atlaspath.
		d, err := initAtlaspath(cfg.Server)
		if err != nil {
			return err
		}

		// Initialize logger.
		if err := logger.InitServer(cfg.Verbose, cfg.Console, d.LogDir()); err != nil {
			return fmt.Errorf("init server logger: %w", err)
		}

		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default server config.
	cfg = config.New()
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func initAtlaspath(cfg *config.ServerConfig) (atlaspath.Atlaspath, error) {
	var options []atlaspath.Option
	if cfg.LogDir != "" {
		options = append(options, atlaspath.WithLogDir(cfg.LogDir))
	}

	return atlaspath.New(options...)
}

func runServer() error {
	logger.Infof("version:\n%s", version.Version())

	// Server config values.
	s, _ := yaml.Marshal(cfg)
	logger.Infof("server configuration:\n%s", string(s))

	ff := dependency.InitMonitor(cfg.PProfPort, cfg.Options.Telemetry)
	defer ff()

	svr, err := manager.New(cfg)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
