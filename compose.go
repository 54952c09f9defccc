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

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// composeBuilderPool provides reusable [strings.Builder] instances for
// assembling composed messages.
var composeBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// compose assembles the message handed to the sink and the forwarded
// argument list.
//
// Layout, in order:
//  1. padded severity tag ("[ERROR] ", "[WARN]  ", ...)
//  2. metadata prefix: "[<module>] " if a module name is configured,
//     then "(<path>) " or "(%s) " depending on the path mode
//  3. location suffix: "(%s):<line> - " when function-name printing is
//     enabled, ":<line> - " otherwise
//  4. the caller's format string, verbatim and uninterpreted
//  5. "\r\n"
//
// The function name and, in base-name mode, the file name are forwarded
// as leading arguments rather than spliced into the message; the caller's
// arguments follow in their original order. The composer never validates
// format verbs against arguments; that contract belongs to the sink.
func (l *Logger) compose(level Level, file string, line int, fn, format string, args []any) (string, []any) {
	b := composeBuilderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		composeBuilderPool.Put(b)
	}()

	b.WriteString(level.tag())
	b.WriteString(l.metaHead)

	extra := 0
	switch l.pathMode {
	case pathFull:
		b.WriteByte('(')
		b.WriteString(file)
		b.WriteString(") ")
	case pathBase:
		b.WriteString("(%s) ")
		extra++
	}

	if l.withFunction {
		b.WriteString("(%s):")
		extra++
	} else {
		b.WriteByte(':')
	}
	b.WriteString(strconv.Itoa(line))
	b.WriteString(" - ")

	b.WriteString(format)
	b.WriteString("\r\n")

	if extra == 0 {
		return b.String(), args
	}

	fwd := make([]any, 0, extra+len(args))
	if l.pathMode == pathBase {
		fwd = append(fwd, filepath.Base(file))
	}
	if l.withFunction {
		fwd = append(fwd, fn)
	}
	fwd = append(fwd, args...)

	return b.String(), fwd
}

// shortFuncName reduces a fully qualified function name such as
// "embedlog.dev/logging.(*Logger).Info" to its bare identifier, matching
// the bare function names the prefix expects.
func shortFuncName(pc uintptr, ok bool) string {
	if !ok {
		return "???"
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "???"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
