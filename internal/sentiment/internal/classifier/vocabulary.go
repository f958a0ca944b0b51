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

var positiveWords = []string{
	// 强烈正面
	"love", "excellent", "amazing", "outstanding", "perfect", "fantastic",
	"wonderful", "superb", "brilliant", "exceptional", "terrific", "awesome",

	// 正面
	"good", "great", "happy", "pleased", "satisfied", "enjoy", "impressive",
	"nice", "thank", "thanks", "grateful", "appreciate", "helpful", "recommend",
	"better", "best", "improved", "well", "easy", "convenient", "user-friendly",
	"clear", "smooth", "reliable", "efficient", "effective", "fast", "responsive",
	"intuitive", "valuable", "worth", "beneficial", "pleased", "glad", "joy",

	// 程度副词也算正面
	"very", "really", "extremely", "highly", "absolutely",
}

// 带空格的词条永远匹配不上单个 token，保留是为了和线上打分结果一致
var negativeWords = []string{
	// 强烈负面
	"hate", "terrible", "awful", "horrible", "dreadful", "abysmal", "disgusting",
	"frustrating", "disappointing", "useless", "pointless", "waste",

	// 负面
	"bad", "poor", "difficult", "hard", "confusing", "slow", "broken", "fail",
	"issue", "problem", "bug", "error", "crash", "glitch", "annoying", "dislike",
	"unhappy", "dissatisfied", "not working", "doesn't work", "can't", "cannot",
	"never", "worst", "fix", "trouble", "difficult", "complicated", "inconsistent",
	"unreliable", "expensive", "overpriced", "lacking", "missing", "incomplete",

	// 批评性的转折
	"but", "however", "though", "although", "despite", "unfortunately", "sadly",
	"fix", "improve", "should", "could", "would", "need to", "needs",
}

var negationWords = []string{
	"not", "no", "never", "don't", "doesn't", "didn't", "won't", "wouldn't", "can't", "cannot",
}

var strongPositivePhrases = []string{
	"really good", "very good", "quite good", "so good", "very nice", "really great",
}

var strongNegativePhrases = []string{
	"very bad", "really bad", "so bad", "too bad", "not good", "very poor",
}
