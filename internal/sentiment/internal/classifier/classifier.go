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
	"regexp"
	"strings"
	"unicode"

	"github.com/ecodeclub/chatterdoc/internal/sentiment/internal/domain"
)

const (
	wordWeight            = 1.0
	negatedNegativeWeight = 0.5
	phraseWeight          = 1.5
	ratingWeight          = 2.0
	// 一方要超过另一方 20% 才算有倾向
	dominanceRatio = 1.2
)

var sentenceSeparator = regexp.MustCompile(`[.!?]+`)

// isSpace 按 ECMAScript 的空白字符切词：包含 U+FEFF，不包含 U+0085
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

type set map[string]struct{}

func newSet(words []string) set {
	res := make(set, len(words))
	for _, w := range words {
		res[w] = struct{}{}
	}
	return res
}

func (s set) contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Classifier 基于词表的规则打分，创建之后只读，可以并发使用
type Classifier struct {
	positive       set
	negative       set
	negations      set
	strongPositive set
	strongNegative set
}

func NewClassifier() *Classifier {
	return &Classifier{
		positive:       newSet(positiveWords),
		negative:       newSet(negativeWords),
		negations:      newSet(negationWords),
		strongPositive: newSet(strongPositivePhrases),
		strongNegative: newSet(strongNegativePhrases),
	}
}

type score struct {
	positive float64
	negative float64
}

// Classify 永远不会失败。rating 为 0 说明用户没有打分
func (c *Classifier) Classify(text string, rating int) domain.Label {
	var total score
	for _, sentence := range sentenceSeparator.Split(strings.ToLower(text), -1) {
		if strings.TrimFunc(sentence, isSpace) == "" {
			continue
		}
		s := c.scoreSentence(strings.FieldsFunc(sentence, isSpace))
		total.positive += s.positive
		total.negative += s.negative
	}

	if rating != 0 {
		if rating >= 4 {
			total.positive += ratingWeight
		} else if rating <= 2 {
			total.negative += ratingWeight
		}
	}

	switch {
	case total.positive > total.negative*dominanceRatio:
		return domain.LabelPositive
	case total.negative > total.positive*dominanceRatio:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

func (c *Classifier) scoreSentence(words []string) score {
	var res score
	negated := c.hasNegation(words)
	for _, w := range words {
		if c.positive.contains(w) {
			if negated {
				res.negative += wordWeight
			} else {
				res.positive += wordWeight
			}
		}
		if c.negative.contains(w) {
			if negated {
				res.positive += negatedNegativeWeight
			} else {
				res.negative += wordWeight
			}
		}
	}

	// 否定句里的强烈短语是减分而不是反转，和线上的打分保持一致
	delta := phraseWeight
	if negated {
		delta = -phraseWeight
	}
	for i := 0; i+1 < len(words); i++ {
		phrase := words[i] + " " + words[i+1]
		if c.strongPositive.contains(phrase) {
			res.positive += delta
		}
		if c.strongNegative.contains(phrase) {
			res.negative += delta
		}
	}
	return res
}

func (c *Classifier) hasNegation(words []string) bool {
	for _, w := range words {
		if c.negations.contains(w) {
			return true
		}
	}
	return false
}
