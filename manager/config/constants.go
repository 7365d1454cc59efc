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

import "time"

const (
	// DatabaseTypeMysql is the mysql database driver.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is the postgres database driver.
	DatabaseTypePostgres = "postgres"
)

const (
	// DefaultServerName is the default server instance name.
	DefaultServerName = "atlas"

	// DefaultRESTAddr is the default rest listen address.
	DefaultRESTAddr = ":8080"
)

const (
	// DefaultMysqlPort is the default mysql port.
	DefaultMysqlPort = 3306

	// DefaultMysqlDBName is the default mysql database name.
	DefaultMysqlDBName = "atlas"

	// DefaultPostgresPort is the default postgres port.
	DefaultPostgresPort = 5432

	// DefaultPostgresDBName is the default postgres database name.
	DefaultPostgresDBName = "atlas"

	// DefaultPostgresSSLMode is the default postgres ssl mode.
	DefaultPostgresSSLMode = "disable"

	// DefaultPostgresTimezone is the default postgres session timezone.
	DefaultPostgresTimezone = "UTC"

	// DefaultRedisDB is the default cache store index.
	DefaultRedisDB = 0

	// DefaultRedisBrokerDB is the default job queue broker store index.
	DefaultRedisBrokerDB = 1

	// DefaultRedisBackendDB is the default job queue backend store index.
	DefaultRedisBackendDB = 2
)

const (
	// DefaultRedisCacheTTL is the default redis cache entry ttl.
	DefaultRedisCacheTTL = 30 * time.Second

	// DefaultLFUCacheSize is the default local cache entry count.
	DefaultLFUCacheSize = 10 * 1000

	// DefaultLFUCacheTTL is the default local cache entry ttl.
	DefaultLFUCacheTTL = 3 * time.Second
)

const (
	// DefaultStorageRootPrefix is the leading key segment of every object.
	// Published manifests reference tiles below it, changing it breaks
	// previously released urls.
	DefaultStorageRootPrefix = "mp"

	// DefaultStorageSignExpire is the default signed url ttl.
	DefaultStorageSignExpire = 5 * time.Minute
)

const (
	// DefaultJobWorkerConcurrency is the default machinery worker concurrency.
	DefaultJobWorkerConcurrency = 10

	// DefaultJobTransferConcurrency is the default tile copy/upload worker count.
	DefaultJobTransferConcurrency = 20
)

const (
	// DefaultSSEPingInterval is the default event stream keep-alive period.
	DefaultSSEPingInterval = 15 * time.Second
)
