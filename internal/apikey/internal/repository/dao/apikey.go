// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type APIKeyDAO interface {
	Create(ctx context.Context, k APIKey) (int64, error)
	FindByUID(ctx context.Context, uid int64) ([]APIKey, error)
	FindByID(ctx context.Context, id int64) (APIKey, error)
	FindByKey(ctx context.Context, key string) (APIKey, error)
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

type apiKeyDAO struct {
	db *egorm.Component
}

func NewAPIKeyGORMDAO(db *egorm.Component) APIKeyDAO {
	return &apiKeyDAO{db: db}
}

func (d *apiKeyDAO) Create(ctx context.Context, k APIKey) (int64, error) {
	now := time.Now().UnixMilli()
	k.Ctime, k.Utime = now, now
	err := d.db.WithContext(ctx).Create(&k).Error
	return k.Id, err
}

func (d *apiKeyDAO) FindByUID(ctx context.Context, uid int64) ([]APIKey, error) {
	var res []APIKey
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (d *apiKeyDAO) FindByID(ctx context.Context, id int64) (APIKey, error) {
	var res APIKey
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *apiKeyDAO) FindByKey(ctx context.Context, key string) (APIKey, error) {
	var res APIKey
	err := d.db.WithContext(ctx).Where("`key` = ?", key).First(&res).Error
	return res, err
}

func (d *apiKeyDAO) UpdateName(ctx context.Context, id int64, name string) error {
	return d.db.WithContext(ctx).Model(&APIKey{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  name,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (d *apiKeyDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&APIKey{}).Error
}
