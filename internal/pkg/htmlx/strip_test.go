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

package htmlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "纯文本",
			input: "Great product, fast shipping",
			want:  "Great product, fast shipping",
		},
		{
			name:  "段落",
			input: "<p>Great <b>product</b></p><p>Fast shipping</p>",
			want:  "Great product\nFast shipping",
		},
		{
			name:  "换行",
			input: "love it<br/>will buy again",
			want:  "love it\nwill buy again",
		},
		{
			name:  "脚本",
			input: `<script>alert("x")</script>love it`,
			want:  "love it",
		},
		{
			name:  "超链接保留文字",
			input: `see <a href="https://example.com">this page</a>`,
			want:  "see this page",
		},
		{
			name:  "HTML实体",
			input: "Tom &amp; Jerry &quot;rocks&quot;",
			want:  `Tom & Jerry "rocks"`,
		},
		{
			name:  "多余的空白",
			input: "  slow \t\t delivery \n\n\n\n bad   support ",
			want:  "slow delivery\n\nbad support",
		},
		{
			name:  "只有标签",
			input: `<img src="https://cdn.example.com/a.png">`,
			want:  "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.input))
		})
	}
}
