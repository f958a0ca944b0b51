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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/apikey/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrAPIKeyNotFound   = errors.New("API Key 不存在")
	ErrPermissionDenied = errors.New("无权操作该 API Key")
)

const (
	keyPrefix   = "sk_"
	DefaultName = "Default API Key"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/apikey.mock.go -package=apikeymocks Service
type Service interface {
	Generate(ctx context.Context, uid int64, name string) (domain.APIKey, error)
	// List 用户还没有 API Key 的时候会自动创建一个默认的
	List(ctx context.Context, uid int64) ([]domain.APIKey, error)
	Rename(ctx context.Context, uid, id int64, name string) error
	Delete(ctx context.Context, uid, id int64) error
	// FindByKey 用于接入方提交反馈时鉴权
	FindByKey(ctx context.Context, key string) (domain.APIKey, error)
}

type service struct {
	repo repository.APIKeyRepository
}

func NewService(repo repository.APIKeyRepository) Service {
	return &service{repo: repo}
}

func (s *service) Generate(ctx context.Context, uid int64, name string) (domain.APIKey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	k := domain.APIKey{
		Uid:  uid,
		Key:  newKey(),
		Name: name,
	}
	id, err := s.repo.Create(ctx, k)
	if err != nil {
		return domain.APIKey{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.APIKey, error) {
	keys, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(keys) > 0 {
		return keys, nil
	}
	k, err := s.Generate(ctx, uid, DefaultName)
	if err != nil {
		return nil, err
	}
	return []domain.APIKey{k}, nil
}

func (s *service) Rename(ctx context.Context, uid, id int64, name string) error {
	k, err := s.ownedKey(ctx, uid, id)
	if err != nil {
		return err
	}
	k.Name = strings.TrimSpace(name)
	if k.Name == "" {
		k.Name = DefaultName
	}
	return s.repo.UpdateName(ctx, k)
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	k, err := s.ownedKey(ctx, uid, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, k)
}

func (s *service) FindByKey(ctx context.Context, key string) (domain.APIKey, error) {
	if key == "" {
		return domain.APIKey{}, ErrAPIKeyNotFound
	}
	k, err := s.repo.FindByKey(ctx, key)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.APIKey{}, ErrAPIKeyNotFound
	}
	return k, err
}

func (s *service) ownedKey(ctx context.Context, uid, id int64) (domain.APIKey, error) {
	k, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.APIKey{}, fmt.Errorf("%w, id %d", ErrAPIKeyNotFound, id)
	}
	if err != nil {
		return domain.APIKey{}, err
	}
	if k.Uid != uid {
		return domain.APIKey{}, fmt.Errorf("%w, uid %d, id %d", ErrPermissionDenied, uid, id)
	}
	return k, nil
}

// newKey sk_ 加上 32 位十六进制字符
func newKey() string {
	return keyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
