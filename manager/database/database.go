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

package database

import (
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mapstack/atlas/manager/config"
	"github.com/mapstack/atlas/manager/models"
)

type Database struct {
	DB  *gorm.DB
	RDB redis.UniversalClient
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql:
		db, err = newMysql(cfg)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
	default:
		return nil, errors.Errorf("unknown database type %s", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	rdb, err := NewRedis(cfg.Database.Redis)
	if err != nil {
		return nil, err
	}

	return &Database{
		DB:  db,
		RDB: rdb,
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Version{},
		&models.Overlay{},
		&models.Building{},
		&models.BuildingView{},
		&models.Asset{},
		&models.Job{},
		&models.Release{},
	)
}
