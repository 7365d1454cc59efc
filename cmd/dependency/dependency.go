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

// Package dependency holds the pieces every command shares: flag and config
// binding, the version sub command, the debug monitor and the quit signal
// handler.
package dependency

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/phayes/freeport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"github.com/mapstack/atlas/cmd/dependency/base"
	logger "github.com/mapstack/atlas/internal/atlaslog"
	"github.com/mapstack/atlas/pkg/atlaspath"
	"github.com/mapstack/atlas/version"
)

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to the configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()
	cobra.OnInitialize(func() {
		initConfig(useConfigFile, rootName, config)
	})

	if !cmd.HasParent() {
		// Add common flags.
		flags := cmd.PersistentFlags()
		flags.Bool("console", false, "whether logger output records to the stdout")
		flags.Bool("verbose", false, "whether logger use debug level")
		flags.Int("pprof-port", -1, "listen port for pprof, 0 represents random port")
		flags.String("jaeger", "", "jaeger endpoint url, like: http://localhost:14250/api/traces")
		flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s, it can also be set by env var: %s_CONFIG",
			filepath.Join(atlaspath.DefaultConfigDir, rootName+".yaml"), strings.ToUpper(rootName)))

		// Bind common flags. The pprof and jaeger flags bind under the keys
		// the config struct expects.
		if err := viper.BindPFlag("console", flags.Lookup("console")); err != nil {
			panic(fmt.Errorf("bind console flag to viper: %w", err))
		}
		if err := viper.BindPFlag("verbose", flags.Lookup("verbose")); err != nil {
			panic(fmt.Errorf("bind verbose flag to viper: %w", err))
		}
		if err := viper.BindPFlag("pprofPort", flags.Lookup("pprof-port")); err != nil {
			panic(fmt.Errorf("bind pprof-port flag to viper: %w", err))
		}
		if err := viper.BindPFlag("telemetry.jaeger", flags.Lookup("jaeger")); err != nil {
			panic(fmt.Errorf("bind jaeger flag to viper: %w", err))
		}
		if err := viper.BindPFlag("config", flags.Lookup("config")); err != nil {
			panic(fmt.Errorf("bind config flag to viper: %w", err))
		}

		// Config for binding env.
		viper.SetEnvPrefix(rootName)
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		if err := viper.BindEnv("config"); err != nil {
			panic(fmt.Errorf("bind config env to viper: %w", err))
		}
	}

	// Add sub command.
	cmd.AddCommand(VersionCmd)
}

func initConfig(useConfigFile bool, name string, config any) {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			// Use config file from the flag.
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(atlaspath.DefaultConfigDir)
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		// If a config file is found, read it in.
		if err := viper.ReadInConfig(); err != nil {
			// The default config path is optional.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
				panic(fmt.Errorf("viper read config: %w", err))
			}
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		panic(fmt.Errorf("unmarshal config to struct: %w", err))
	}
}

// InitMonitor initializes the debug monitor and the jaeger tracer, returning
// the cleanup of the pieces it started.
func InitMonitor(pprofPort int, otelOption base.TelemetryOption) func() {
	fc := make(chan func(), 5)

	if pprofPort >= 0 {
		// Enable go pprof and statsview.
		go func() {
			port := pprofPort
			if port == 0 {
				port, _ = freeport.GetFreePort()
			}

			debugAddr := fmt.Sprintf("localhost:%d", port)
			viewer.SetConfiguration(viewer.WithAddr(debugAddr))

			logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
				"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
				Infof("enable pprof at %s", debugAddr)

			if err := statsview.New().Start(); err != nil {
				logger.Warnf("serve pprof error: %v", err)
			}
		}()
	}

	if otelOption.Jaeger != "" {
		ff, err := initJaegerTracer(otelOption)
		if err != nil {
			logger.Warnf("init jaeger tracer error: %v", err)
		} else {
			fc <- ff
		}
	}

	return func() {
		for {
			select {
			case f := <-fc:
				f()
			default:
				return
			}
		}
	}
}

func initJaegerTracer(otelOption base.TelemetryOption) (func(), error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(otelOption.Jaeger)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exp, sdktrace.WithMaxQueueSize(1000), sdktrace.WithMaxExportBatchSize(100)),
		sdktrace.WithResource(resource.NewSchemaless(
			semconv.ServiceNameKey.String("atlas"),
			semconv.ServiceVersionKey.String(version.GitVersion))))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			otel.Handle(err)
		}
	}, nil
}

// SetupQuitSignalHandler runs handler once on the first quit signal.
func SetupQuitSignalHandler(handler func()) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signalChan {
			logger.Warnf("receive signal: %v", sig)
			if !done {
				done = true
				handler()
				logger.Warnf("handle signal: %v finish", sig)
			}
		}
	}()
}
