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

package sentiment

import (
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service"
	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/service/handler/credit"
)

type Service = service.Service
type Request = domain.Request
type Response = domain.Response
type Label = domain.Label

const (
	LabelUnset    = domain.LabelUnset
	LabelPositive = domain.LabelPositive
	LabelNegative = domain.LabelNegative
	LabelNeutral  = domain.LabelNeutral
)

var (
	ErrInsufficientCredit = service.ErrInsufficientCredit
	ErrInvalidText        = service.ErrInvalidText
)

// RefundKey 根据扣费的幂等键得到退还积分的幂等键
func RefundKey(key string) string {
	return credit.RefundKey(key)
}
