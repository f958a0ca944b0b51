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
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy = bluemonday.StrictPolicy()
	// 换行类的标签先换成换行，保留用户原本的分段
	lineBreaks = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</li>|</div>`)
	spaces     = regexp.MustCompile(`[ \t]+`)
	newlines   = regexp.MustCompile(`\n{3,}`)
)

// StripHTML 去掉所有的 HTML 标签，script 和 style 的内容也一起去掉，返回纯文本
func StripHTML(content string) string {
	content = lineBreaks.ReplaceAllString(content, "\n")
	content = policy.Sanitize(content)
	// Sanitize 会转义实体，存储的是纯文本，所以要还原
	content = html.UnescapeString(content)
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = spaces.ReplaceAllString(content, " ")
	content = newlines.ReplaceAllString(content, "\n\n")
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
