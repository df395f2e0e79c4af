/*
   Copyright 2026 The resources-io Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package codec

import "github.com/movesthatmatter/resources-io/diag"

// PageRequest is the optional pagination wrapper around a query.
type PageRequest[Q any] struct {
	PageIndex *int64 `json:"pageIndex,omitempty"`
	PageSize  *int64 `json:"pageSize,omitempty"`
	Query     *Q     `json:"query,omitempty"`
}

// PageResponse is one page of items.
type PageResponse[T any] struct {
	Items        []T   `json:"items"`
	ItemsTotal   int64 `json:"itemsTotal"`
	CurrentIndex int64 `json:"currentIndex"`
}

// Paginated wraps a query codec in {pageIndex?, pageSize?, query?}.
func Paginated[Q any](query Codec[Q]) Codec[PageRequest[Q]] {
	return New("paginated<"+query.Name()+">", func(raw any) (PageRequest[Q], error) {
		var out PageRequest[Q]
		m, ok := AsObject(raw)
		if !ok {
			return Mismatch[PageRequest[Q]]("", "object", raw)
		}
		var issues diag.List
		var d diag.List
		out.PageIndex, d = OptionalField(m, "pageIndex", Int())
		issues = append(issues, d...)
		out.PageSize, d = OptionalField(m, "pageSize", Int())
		issues = append(issues, d...)
		out.Query, d = OptionalField(m, "query", query)
		issues = append(issues, d...)
		if len(issues) > 0 {
			return PageRequest[Q]{}, issues
		}
		return out, nil
	})
}

// Page decodes {items, itemsTotal, currentIndex} with every item checked by
// item.
func Page[T any](item Codec[T]) Codec[PageResponse[T]] {
	items := Slice(item)
	return New("page<"+item.Name()+">", func(raw any) (PageResponse[T], error) {
		var out PageResponse[T]
		m, ok := AsObject(raw)
		if !ok {
			return Mismatch[PageResponse[T]]("", "object", raw)
		}
		var issues diag.List
		var d diag.List
		out.Items, d = Field(m, "items", items)
		issues = append(issues, d...)
		out.ItemsTotal, d = Field(m, "itemsTotal", Int())
		issues = append(issues, d...)
		out.CurrentIndex, d = Field(m, "currentIndex", Int())
		issues = append(issues, d...)
		if len(issues) > 0 {
			return PageResponse[T]{}, issues
		}
		return out, nil
	})
}
