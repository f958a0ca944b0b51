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

package classifier

import (
	"sync"
	"testing"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		rating int
		want   domain.Label
	}{
		{
			name:   "正面词加高分",
			text:   "The support team was excellent and fast!",
			rating: 5,
			want:   domain.LabelPositive,
		},
		{
			name:   "负面词加低分",
			text:   "This is broken and the bug is so bad, it's frustrating.",
			rating: 1,
			want:   domain.LabelNegative,
		},
		{
			name:   "没有情感词中间分",
			text:   "It's okay, does what it says.",
			rating: 3,
			want:   domain.LabelNeutral,
		},
		{
			name: "空文本没有评分",
			text: "",
			want: domain.LabelNeutral,
		},
		{
			name: "只有标点",
			text: "?!...",
			want: domain.LabelNeutral,
		},
		{
			name:   "空文本高分",
			text:   "",
			rating: 5,
			want:   domain.LabelPositive,
		},
		{
			name:   "空文本四分",
			text:   "",
			rating: 4,
			want:   domain.LabelPositive,
		},
		{
			name:   "空文本低分",
			text:   "",
			rating: 1,
			want:   domain.LabelNegative,
		},
		{
			name:   "空文本两分",
			text:   "",
			rating: 2,
			want:   domain.LabelNegative,
		},
		{
			name:   "三分不影响结果",
			text:   "",
			rating: 3,
			want:   domain.LabelNeutral,
		},
		{
			name: "正面词",
			text: "The app is helpful",
			want: domain.LabelPositive,
		},
		{
			name: "否定之后正面词变成负面",
			text: "The app is not helpful",
			want: domain.LabelNegative,
		},
		{
			name: "否定之后负面词变成半个正面",
			text: "It is not slow",
			want: domain.LabelPositive,
		},
		{
			name: "否定只作用于当前句子",
			text: "Not slow. Terrible.",
			want: domain.LabelNegative,
		},
		{
			name: "同一个句子里的否定作用于全部词",
			text: "not slow and terrible",
			want: domain.LabelPositive,
		},
		{
			name: "没有强烈短语时负面占优",
			text: "It was good but slow",
			want: domain.LabelNegative,
		},
		{
			name: "强烈短语加分",
			text: "It was very good but slow",
			want: domain.LabelPositive,
		},
		{
			// not good 在否定句里反而是减负面分
			name: "否定句里的负面短语",
			text: "This is not good",
			want: domain.LabelPositive,
		},
		{
			name: "否定句里的负面短语和程度词",
			text: "This is not really bad",
			want: domain.LabelPositive,
		},
		{
			name: "刚好没有超过阈值",
			text: "good great nice fast easy clear bad poor slow broken crash",
			want: domain.LabelNeutral,
		},
		{
			name: "超过阈值",
			text: "good great nice fast easy clear smooth bad poor slow broken crash",
			want: domain.LabelPositive,
		},
		{
			name: "正负持平",
			text: "good but",
			want: domain.LabelNeutral,
		},
		{
			name: "大小写不敏感",
			text: "EXCELLENT",
			want: domain.LabelPositive,
		},
		{
			name: "句末标点会被切掉",
			text: "good!",
			want: domain.LabelPositive,
		},
		{
			name: "逗号会留在词上",
			text: "good, fine",
			want: domain.LabelNeutral,
		},
		{
			name: "多个词的词条匹配不上",
			text: "it is not working",
			want: domain.LabelNeutral,
		},
		{
			name: "重复的词每次都计分",
			text: "bad bad good",
			want: domain.LabelNegative,
		},
		{
			name:   "文本和评分相互抵消",
			text:   "bad and slow",
			rating: 5,
			want:   domain.LabelNeutral,
		},
		{
			name: "否定词反转正面词",
			text: "I do not love this",
			want: domain.LabelNegative,
		},
		{
			name: "强烈短语加分",
			text: "This is really good",
			want: domain.LabelPositive,
		},
		{
			name: "U+FEFF 是空白",
			text: "hate\ufeffit",
			want: domain.LabelNegative,
		},
		{
			name: "U+0085 不是空白",
			text: "love\u0085it",
			want: domain.LabelNeutral,
		},
		{
			name: "不换行空格是空白",
			text: "love\u00a0it",
			want: domain.LabelPositive,
		},
	}

	c := NewClassifier()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.text, tc.rating)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestClassifier_Concurrent(t *testing.T) {
	c := NewClassifier()
	const text = "The support team was excellent and fast! But the docs are confusing."
	want := c.Classify(text, 4)

	var wg sync.WaitGroup
	results := make([]domain.Label, 64)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = c.Classify(text, 4)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
