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

package base

// Options is the common configuration embedded into every component config.
type Options struct {
	// Console shows log on console.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose prints debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// PProfPort is the port for pprof, 0 represents random port
	// and a negative port disables the monitor.
	PProfPort int `yaml:"pprofPort" mapstructure:"pprofPort"`

	// Telemetry configuration.
	Telemetry TelemetryOption `yaml:"telemetry" mapstructure:"telemetry"`
}

type TelemetryOption struct {
	// Jaeger is the jaeger collector endpoint.
	Jaeger string `yaml:"jaeger" mapstructure:"jaeger"`
}
