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

package config

import (
	"errors"
	"time"

	"github.com/mapstack/atlas/cmd/dependency/base"
	"github.com/mapstack/atlas/pkg/objectstorage"
	"github.com/mapstack/atlas/pkg/slices"
	"github.com/mapstack/atlas/pkg/tiler"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server *ServerConfig `yaml:"server" mapstructure:"server"`

	// Database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Cache configuration.
	Cache *CacheConfig `yaml:"cache" mapstructure:"cache"`

	// ObjectStorage configuration.
	ObjectStorage *ObjectStorageConfig `yaml:"objectStorage" mapstructure:"objectStorage"`

	// Storage layout configuration.
	Storage *StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Job configuration.
	Job *JobConfig `yaml:"job" mapstructure:"job"`

	// SSE configuration.
	SSE *SSEConfig `yaml:"sse" mapstructure:"sse"`

	// Metrics configuration.
	Metrics *MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Name is the server instance name.
	Name string `yaml:"name" mapstructure:"name"`

	// LogDir is the server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// PublicPath is the directory of static assets served at /.
	PublicPath string `yaml:"publicPath" mapstructure:"publicPath"`

	// REST server configuration.
	REST *RestConfig `yaml:"rest" mapstructure:"rest"`
}

type RestConfig struct {
	// Addr is the rest server listen address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type DatabaseConfig struct {
	// Type is the database driver, either mysql or postgres.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql configuration.
	Mysql *MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres *PostgresConfig `yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration.
	Redis *RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	// User is the mysql username.
	User string `yaml:"user" mapstructure:"user"`

	// Password is the mysql password.
	Password string `yaml:"password" mapstructure:"password"`

	// Host is the mysql host.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the mysql port.
	Port int `yaml:"port" mapstructure:"port"`

	// DBName is the mysql database name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// TLSConfig is the client tls mode, one of true, false, skip-verify
	// and preferred. Ignored when TLS is set.
	TLSConfig string `yaml:"tlsConfig" mapstructure:"tlsConfig"`

	// TLS is the custom client tls configuration.
	TLS *MysqlTLSClientConfig `yaml:"tls" mapstructure:"tls"`

	// Migrate runs schema migration on startup.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type MysqlTLSClientConfig struct {
	// CA is the root certificate file path.
	CA string `yaml:"caCert" mapstructure:"caCert"`

	// Cert is the client certificate file path.
	Cert string `yaml:"cert" mapstructure:"cert"`

	// Key is the client key file path.
	Key string `yaml:"key" mapstructure:"key"`

	// InsecureSkipVerify skips the server certificate verification.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

type PostgresConfig struct {
	// User is the postgres username.
	User string `yaml:"user" mapstructure:"user"`

	// Password is the postgres password.
	Password string `yaml:"password" mapstructure:"password"`

	// Host is the postgres host.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the postgres port.
	Port int `yaml:"port" mapstructure:"port"`

	// DBName is the postgres database name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// SSLMode is the postgres ssl mode.
	SSLMode string `yaml:"sslMode" mapstructure:"sslMode"`

	// Timezone is the postgres session timezone.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// PreferSimpleProtocol disables implicit prepared statement usage.
	PreferSimpleProtocol bool `yaml:"preferSimpleProtocol" mapstructure:"preferSimpleProtocol"`

	// Migrate runs schema migration on startup.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	// Addrs is the redis server addresses.
	Addrs []string `yaml:"addrs" mapstructure:"addrs"`

	// MasterName is the sentinel master name.
	MasterName string `yaml:"masterName" mapstructure:"masterName"`

	// Username is the redis username.
	Username string `yaml:"username" mapstructure:"username"`

	// Password is the redis password.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the cache store index.
	DB int `yaml:"db" mapstructure:"db"`

	// BrokerDB is the job queue broker store index.
	BrokerDB int `yaml:"brokerDB" mapstructure:"brokerDB"`

	// BackendDB is the job queue backend store index.
	BackendDB int `yaml:"backendDB" mapstructure:"backendDB"`
}

type CacheConfig struct {
	// Redis cache configuration.
	Redis *RedisCacheConfig `yaml:"redis" mapstructure:"redis"`

	// Local cache configuration.
	Local *LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	// TTL is the redis cache entry ttl.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	// Size is the maximum entry count of the local cache.
	Size int `yaml:"size" mapstructure:"size"`

	// TTL is the local cache entry ttl.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type ObjectStorageConfig struct {
	// Name is the object storage provider, either s3 or oss.
	Name string `yaml:"name" mapstructure:"name"`

	// Region is the provider region.
	Region string `yaml:"region" mapstructure:"region"`

	// Endpoint is the provider endpoint.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AccessKey is the provider access key id.
	AccessKey string `yaml:"accessKey" mapstructure:"accessKey"`

	// SecretKey is the provider secret access key.
	SecretKey string `yaml:"secretKey" mapstructure:"secretKey"`

	// Bucket holds every object written by the server.
	Bucket string `yaml:"bucket" mapstructure:"bucket"`
}

type StorageConfig struct {
	// RootPrefix is the leading key segment of every object, the
	// stable contract with published viewers.
	RootPrefix string `yaml:"rootPrefix" mapstructure:"rootPrefix"`

	// PublicURL is the public base url serving the bucket.
	PublicURL string `yaml:"publicURL" mapstructure:"publicURL"`

	// SignExpire is the signed url ttl.
	SignExpire time.Duration `yaml:"signExpire" mapstructure:"signExpire"`
}

type JobConfig struct {
	// WorkerConcurrency is the machinery worker concurrency.
	WorkerConcurrency int `yaml:"workerConcurrency" mapstructure:"workerConcurrency"`

	// TransferConcurrency is the tile copy/upload worker count.
	TransferConcurrency int `yaml:"transferConcurrency" mapstructure:"transferConcurrency"`

	// Tiler is the tile pyramid generation configuration.
	Tiler *TilerConfig `yaml:"tiler" mapstructure:"tiler"`
}

type TilerConfig struct {
	// TileSize is the tile edge length in pixels.
	TileSize int `yaml:"tileSize" mapstructure:"tileSize"`

	// Overlap is the declared tile overlap in pixels.
	Overlap int `yaml:"overlap" mapstructure:"overlap"`

	// Format is the tile encoding, either png or jpeg.
	Format string `yaml:"format" mapstructure:"format"`

	// Quality is the jpeg encoding quality.
	Quality int `yaml:"quality" mapstructure:"quality"`
}

type SSEConfig struct {
	// PingInterval is the keep-alive ping period for event streams.
	PingInterval time.Duration `yaml:"pingInterval" mapstructure:"pingInterval"`
}

type MetricsConfig struct {
	// Enable mounts the prometheus middleware.
	Enable bool `yaml:"enable" mapstructure:"enable"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: &ServerConfig{
			Name: DefaultServerName,
			REST: &RestConfig{
				Addr: DefaultRESTAddr,
			},
		},
		Database: &DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: &MysqlConfig{
				Port:    DefaultMysqlPort,
				DBName:  DefaultMysqlDBName,
				Migrate: true,
			},
			Postgres: &PostgresConfig{
				Port:     DefaultPostgresPort,
				DBName:   DefaultPostgresDBName,
				SSLMode:  DefaultPostgresSSLMode,
				Timezone: DefaultPostgresTimezone,
				Migrate:  true,
			},
			Redis: &RedisConfig{
				DB:        DefaultRedisDB,
				BrokerDB:  DefaultRedisBrokerDB,
				BackendDB: DefaultRedisBackendDB,
			},
		},
		Cache: &CacheConfig{
			Redis: &RedisCacheConfig{
				TTL: DefaultRedisCacheTTL,
			},
			Local: &LocalCacheConfig{
				Size: DefaultLFUCacheSize,
				TTL:  DefaultLFUCacheTTL,
			},
		},
		ObjectStorage: &ObjectStorageConfig{
			Name: objectstorage.ServiceNameS3,
		},
		Storage: &StorageConfig{
			RootPrefix: DefaultStorageRootPrefix,
			SignExpire: DefaultStorageSignExpire,
		},
		Job: &JobConfig{
			WorkerConcurrency:   DefaultJobWorkerConcurrency,
			TransferConcurrency: DefaultJobTransferConcurrency,
			Tiler: &TilerConfig{
				TileSize: tiler.DefaultTileSize,
				Overlap:  tiler.DefaultOverlap,
				Format:   tiler.FormatJPEG,
				Quality:  tiler.DefaultQuality,
			},
		},
		SSE: &SSEConfig{
			PingInterval: DefaultSSEPingInterval,
		},
		Metrics: &MetricsConfig{
			Enable: true,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server == nil {
		return errors.New("config requires parameter server")
	}

	if cfg.Server.Name == "" {
		return errors.New("server requires parameter name")
	}

	if cfg.Server.REST == nil {
		return errors.New("server requires parameter rest")
	}

	if cfg.Server.REST.Addr == "" {
		return errors.New("rest requires parameter addr")
	}

	if cfg.Database == nil {
		return errors.New("config requires parameter database")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql:
		if cfg.Database.Mysql == nil {
			return errors.New("database requires parameter mysql")
		}

		if cfg.Database.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Database.Mysql.Password == "" {
			return errors.New("mysql requires parameter password")
		}

		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres == nil {
			return errors.New("database requires parameter postgres")
		}

		if cfg.Database.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Database.Postgres.Password == "" {
			return errors.New("postgres requires parameter password")
		}

		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	default:
		return errors.New("database requires parameter type")
	}

	if cfg.Database.Redis == nil {
		return errors.New("database requires parameter redis")
	}

	if len(cfg.Database.Redis.Addrs) == 0 {
		return errors.New("redis requires parameter addrs")
	}

	if cfg.Cache == nil {
		return errors.New("config requires parameter cache")
	}

	if cfg.Cache.Redis == nil {
		return errors.New("cache requires parameter redis")
	}

	if cfg.Cache.Redis.TTL == 0 {
		return errors.New("redis requires parameter ttl")
	}

	if cfg.Cache.Local == nil {
		return errors.New("cache requires parameter local")
	}

	if cfg.Cache.Local.Size == 0 {
		return errors.New("local requires parameter size")
	}

	if cfg.Cache.Local.TTL == 0 {
		return errors.New("local requires parameter ttl")
	}

	if cfg.ObjectStorage == nil {
		return errors.New("config requires parameter objectStorage")
	}

	if !slices.Contains([]string{objectstorage.ServiceNameS3, objectstorage.ServiceNameOSS}, cfg.ObjectStorage.Name) {
		return errors.New("objectStorage requires parameter name")
	}

	if cfg.ObjectStorage.AccessKey == "" {
		return errors.New("objectStorage requires parameter accessKey")
	}

	if cfg.ObjectStorage.SecretKey == "" {
		return errors.New("objectStorage requires parameter secretKey")
	}

	if cfg.ObjectStorage.Bucket == "" {
		return errors.New("objectStorage requires parameter bucket")
	}

	if cfg.Storage == nil {
		return errors.New("config requires parameter storage")
	}

	if cfg.Storage.RootPrefix == "" {
		return errors.New("storage requires parameter rootPrefix")
	}

	if cfg.Job == nil {
		return errors.New("config requires parameter job")
	}

	if cfg.Job.WorkerConcurrency <= 0 {
		return errors.New("job requires parameter workerConcurrency")
	}

	if cfg.Job.TransferConcurrency <= 0 {
		return errors.New("job requires parameter transferConcurrency")
	}

	if cfg.Job.Tiler == nil {
		return errors.New("job requires parameter tiler")
	}

	if cfg.Job.Tiler.TileSize <= 0 {
		return errors.New("tiler requires parameter tileSize")
	}

	if !slices.Contains([]string{tiler.FormatPNG, tiler.FormatJPEG}, cfg.Job.Tiler.Format) {
		return errors.New("tiler requires parameter format")
	}

	if cfg.Job.Tiler.Quality <= 0 || cfg.Job.Tiler.Quality > 100 {
		return errors.New("tiler requires parameter quality")
	}

	if cfg.SSE == nil {
		return errors.New("config requires parameter sse")
	}

	if cfg.SSE.PingInterval <= 0 {
		return errors.New("sse requires parameter pingInterval")
	}

	if cfg.Metrics == nil {
		return errors.New("config requires parameter metrics")
	}

	return nil
}
