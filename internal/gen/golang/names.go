package golang

import (
	"strings"

	"hap-catalog-generator/internal/gen"
	"hap-catalog-generator/internal/naming"
)

// runtimeNames are declared by runtime.go.
var runtimeNames = []string{
	"Service", "Characteristic", "ServiceType", "CharacteristicType", "NewService",
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
}

var goPredeclared = []string{
	"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
	"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
	"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"true", "false", "iota", "nil", "append", "cap", "clear", "close",
	"complex", "copy", "delete", "imag", "len", "make", "max", "min", "new",
	"panic", "print", "println", "real", "recover",
}

// typeRules name exported package-level types.
func typeRules() gen.Rules {
	words := append(append(append([]string{}, runtimeNames...), goKeywords...), goPredeclared...)

	return gen.Rules{
		Case:     naming.UpperFirst,
		Reserved: gen.WordSet(words...),
	}
}

// accessorRules name methods on a service wrapper.
func accessorRules() gen.Rules {
	return gen.Rules{
		Case:     naming.UpperFirst,
		Reserved: gen.WordSet("Type", "Raw"),
	}
}

// buildSuffixes are file name endings the go tool treats as constraints.
var buildSuffixes = gen.WordSet(
	"test",
	"aix", "android", "darwin", "dragonfly", "freebsd", "hurd", "illumos", "ios",
	"js", "linux", "nacl", "netbsd", "openbsd", "plan9", "solaris", "wasip1",
	"windows", "zos",
	"386", "amd64", "arm", "arm64", "loong64", "mips", "mipsle", "mips64",
	"mips64le", "ppc64", "ppc64le", "riscv64", "s390x", "wasm",
)

// fileRules name the per-entity files.
func fileRules() gen.Rules {
	return gen.Rules{
		Case: func(s string) string {
			s = naming.SnakeCase(s)

			last := s
			if i := strings.LastIndexByte(s, '_'); i >= 0 {
				last = s[i+1:]
			}

			if _, ok := buildSuffixes[last]; ok {
				s += "_gen"
			}

			return s
		},
		ValidStart: func(rune) bool { return true },
	}
}
