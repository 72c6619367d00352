// Copyright 2025 The Rivaas Authors
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

package preload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEventString locks the canonical display form.
func TestEventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LoadStart(path: admin)", Event{Kind: LoadStart, Path: "admin"}.String())
	assert.Equal(t, "LoadEnd(path: admin/users)", Event{Kind: LoadEnd, Path: "admin/users"}.String())
}

// TestEventSinkFunc: the function adapter forwards events.
func TestEventSinkFunc(t *testing.T) {
	t.Parallel()

	var got []Event
	sink := EventSinkFunc(func(e Event) { got = append(got, e) })

	sink.Publish(Event{Kind: LoadStart, Path: "a"})
	sink.Publish(Event{Kind: LoadEnd, Path: "a"})

	assert.Equal(t, []Event{
		{Kind: LoadStart, Path: "a"},
		{Kind: LoadEnd, Path: "a"},
	}, got)
}
