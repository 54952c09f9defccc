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

// The compiled-in threshold is selected with exactly one of the build tags
// lognone, logerror, logwarn, loginfo or logdebug. Each tag guards a file
// declaring the compiledThreshold constant, so passing two tags is a
// duplicate-declaration compile failure. With no tag the constant stays
// unset: the package-level entry points compile to nothing and [New]
// requires an explicit [WithThreshold].
//
// The logoff tag is a global kill switch. It forces every entry point,
// package-level and per-Logger, to a no-op regardless of threshold.
//
// Because both knobs are constant guards, builds without the
// corresponding tags generate no code for the suppressed call sites.

// levelUnset marks a build with no threshold tag. It is outside the valid
// level range so every level comparison against it fails closed.
const levelUnset Level = -1

// CompiledThreshold returns the threshold selected by build tags and
// whether one was compiled in at all.
func CompiledThreshold() (Level, bool) {
	return compiledThreshold, compiledThreshold != levelUnset
}
