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

type APIKey struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Ctime int64  `json:"ctime"`
}

type APIKeyList struct {
	Keys []APIKey `json:"keys"`
}

type GenerateReq struct {
	Name string `json:"name"`
}

type RenameReq struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type IDReq struct {
	ID int64 `json:"id"`
}
