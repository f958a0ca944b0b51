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

import "unicode/utf8"

// Truncate 最多保留 maxRunes 个字符，不会截断多字节字符
func Truncate(content string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(content) <= maxRunes {
		return content
	}
	cnt := 0
	for idx := range content {
		if cnt == maxRunes {
			return content[:idx]
		}
		cnt++
	}
	return content
}
