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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/domain"
	"github.com/ecodeclub/ecache"
	pkgerrors "github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存中没有 API Key")

const expiration = 15 * time.Minute

type APIKeyCache interface {
	Get(ctx context.Context, key string) (domain.APIKey, error)
	Set(ctx context.Context, k domain.APIKey) error
	Delete(ctx context.Context, key string) error
}

type apiKeyECache struct {
	ec ecache.Cache
}

func NewAPIKeyECache(ec ecache.Cache) APIKeyCache {
	return &apiKeyECache{
		ec: &ecache.NamespaceCache{
			Namespace: "apikey:",
			C:         ec,
		},
	}
}

func (c *apiKeyECache) Get(ctx context.Context, key string) (domain.APIKey, error) {
	val := c.ec.Get(ctx, c.key(key))
	if val.KeyNotFound() {
		return domain.APIKey{}, ErrKeyNotFound
	}
	var k domain.APIKey
	if err := val.JSONScan(&k); err != nil {
		return domain.APIKey{}, pkgerrors.Wrap(err, "读取 API Key 缓存失败")
	}
	return k, nil
}

func (c *apiKeyECache) Set(ctx context.Context, k domain.APIKey) error {
	data, err := json.Marshal(k)
	if err != nil {
		return pkgerrors.Wrap(err, "序列化 API Key 失败")
	}
	return c.ec.Set(ctx, c.key(k.Key), string(data), expiration)
}

func (c *apiKeyECache) Delete(ctx context.Context, key string) error {
	_, err := c.ec.Delete(ctx, c.key(key))
	return err
}

func (c *apiKeyECache) key(key string) string {
	return "key:" + key
}
