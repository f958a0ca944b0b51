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

package domain

type Label string

const (
	// LabelUnset 还没有分析过
	LabelUnset    Label = ""
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

func (l Label) String() string {
	return string(l)
}

// Valid 只有三种分析结果是合法的，未分析不算
func (l Label) Valid() bool {
	switch l {
	case LabelPositive, LabelNegative, LabelNeutral:
		return true
	default:
		return false
	}
}

type Request struct {
	// Key 扣减积分的幂等键，为空的时候会自动生成
	Key   string
	Uid   int64
	Biz   string
	BizID int64
	Text  string
	// Rating 1-5 分，0 代表用户没有打分
	Rating int
}

type Response struct {
	Label Label
	// Key 实际使用的扣费幂等键，退还积分的时候要用
	Key string
	// Credits 扣费之后剩余的积分
	Credits uint64
}
