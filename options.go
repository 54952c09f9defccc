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

// WithThreshold sets the highest severity level compiled in for this
// Logger. It overrides the build-tag-selected threshold. Values outside
// the five defined levels are rejected by [Logger.Validate].
func WithThreshold(l Level) Option {
	return func(lg *Logger) { lg.threshold = l }
}

// WithModuleName sets the module/library tag added to every message as
// "[<name>] ". An empty name leaves the prefix without a module tag.
func WithModuleName(name string) Option {
	return func(lg *Logger) { lg.moduleName = name }
}

// WithFilePath splices the full call-site file path into the prefix as
// "(<path>) ". Mutually exclusive with [WithFileName]; the last option
// applied wins.
func WithFilePath() Option {
	return func(lg *Logger) { lg.pathMode = pathFull }
}

// WithFileName renders "(%s) " in the prefix and forwards the call-site
// base file name as a leading argument instead of splicing it.
func WithFileName() Option {
	return func(lg *Logger) { lg.pathMode = pathBase }
}

// WithFunctionName adds "(%s):<line> - " to the prefix with the calling
// function's bare name forwarded as a leading argument. Without it the
// location suffix is ":<line> - ".
func WithFunctionName() Option {
	return func(lg *Logger) { lg.withFunction = true }
}

// WithSink binds a sink at construction. Equivalent to calling
// [Logger.Bind] immediately after [New]; nil binds the no-op sink.
func WithSink(s Sink) Option {
	return func(lg *Logger) { lg.initial = s }
}
