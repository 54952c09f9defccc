// Copyright 2025 The Embedlog Authors
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

package logging

import "errors"

// Sentinel errors, checkable with [errors.Is].
//
// Both are configuration errors surfaced by [New]: a wrongly configured
// threshold is refused outright rather than silently replaced, since a
// silently-wrong threshold could mask or flood a deployed system.
var (
	// ErrMissingThreshold indicates that no threshold was compiled in via
	// build tag and none was supplied with [WithThreshold].
	ErrMissingThreshold = errors.New("no logging threshold configured")

	// ErrInvalidLevel indicates a threshold outside the five defined
	// severity levels.
	ErrInvalidLevel = errors.New("invalid logging level")
)
