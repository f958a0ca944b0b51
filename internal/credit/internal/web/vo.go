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

package web

type Credit struct {
	Amount uint64 `json:"amount"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CreditLog struct {
	Key     string `json:"key"`
	Amount  int64  `json:"amount"`
	Balance uint64 `json:"balance"`
	Biz     string `json:"biz"`
	BizId   int64  `json:"bizId"`
	Desc    string `json:"desc"`
	Ctime   int64  `json:"ctime"`
}

type CreditLogList struct {
	Logs []CreditLog `json:"logs"`
}
