// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package v128

import (
	"fmt"
	"strings"
)

// String formats v with its shape, e.g. "i32x4{1, 2, 3, 4}".
func (v Vec128[T]) String() string {
	var sb strings.Builder
	sb.WriteString(KindOf[T]().Shape())
	sb.WriteByte('{')
	for i, x := range v.lanes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('}')
	return sb.String()
}
