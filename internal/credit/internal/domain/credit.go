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

type Credit struct {
	Uid         int64
	TotalAmount uint64
	Logs        []CreditLog
}

type CreditLog struct {
	ID  int64
	Key string
	Uid int64
	// ChangeAmount 调用方总是传正数，是增加还是扣减由调用的方法决定。
	// 查询出来的流水里扣减为负数
	ChangeAmount int64
	// Balance 变动之后的余额
	Balance uint64
	Biz     string
	BizId   int64
	Desc    string
	Ctime   int64
}
