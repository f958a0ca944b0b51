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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository/cache"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./apikey.go -destination=./mocks/apikey.mock.go -package=repomocks APIKeyRepository
type APIKeyRepository interface {
	Create(ctx context.Context, k domain.APIKey) (int64, error)
	FindByUID(ctx context.Context, uid int64) ([]domain.APIKey, error)
	FindByID(ctx context.Context, id int64) (domain.APIKey, error)
	// FindByKey 先查缓存
	FindByKey(ctx context.Context, key string) (domain.APIKey, error)
	UpdateName(ctx context.Context, k domain.APIKey) error
	Delete(ctx context.Context, k domain.APIKey) error
}

type CachedAPIKeyRepository struct {
	dao    dao.APIKeyDAO
	cache  cache.APIKeyCache
	logger *elog.Component
}

func NewCachedAPIKeyRepository(d dao.APIKeyDAO, c cache.APIKeyCache) APIKeyRepository {
	return &CachedAPIKeyRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedAPIKeyRepository) Create(ctx context.Context, k domain.APIKey) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(k))
}

func (r *CachedAPIKeyRepository) FindByUID(ctx context.Context, uid int64) ([]domain.APIKey, error) {
	res, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.APIKey) domain.APIKey {
		return r.toDomain(src)
	}), nil
}

func (r *CachedAPIKeyRepository) FindByID(ctx context.Context, id int64) (domain.APIKey, error) {
	k, err := r.dao.FindByID(ctx, id)
	return r.toDomain(k), err
}

func (r *CachedAPIKeyRepository) FindByKey(ctx context.Context, key string) (domain.APIKey, error) {
	k, err := r.cache.Get(ctx, key)
	if err == nil {
		return k, nil
	}
	ke, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		return domain.APIKey{}, err
	}
	k = r.toDomain(ke)
	if err1 := r.cache.Set(ctx, k); err1 != nil {
		r.logger.Warn("回写 API Key 缓存失败", elog.FieldErr(err1), elog.Int64("id", k.ID))
	}
	return k, nil
}

func (r *CachedAPIKeyRepository) UpdateName(ctx context.Context, k domain.APIKey) error {
	if err := r.dao.UpdateName(ctx, k.ID, k.Name); err != nil {
		return err
	}
	return r.cache.Delete(ctx, k.Key)
}

func (r *CachedAPIKeyRepository) Delete(ctx context.Context, k domain.APIKey) error {
	if err := r.dao.Delete(ctx, k.ID); err != nil {
		return err
	}
	return r.cache.Delete(ctx, k.Key)
}

func (r *CachedAPIKeyRepository) toEntity(k domain.APIKey) dao.APIKey {
	return dao.APIKey{
		Id:   k.ID,
		Uid:  k.Uid,
		Key:  k.Key,
		Name: k.Name,
	}
}

func (r *CachedAPIKeyRepository) toDomain(k dao.APIKey) domain.APIKey {
	return domain.APIKey{
		ID:    k.Id,
		Uid:   k.Uid,
		Key:   k.Key,
		Name:  k.Name,
		Ctime: time.UnixMilli(k.Ctime),
	}
}
