// Package natives provides the small set of native functions the VM
// installs into its global table at startup, grounded on the teacher's
// builtins.Registry registration pattern — simplified here to direct
// value.Native wrapping instead of a name->id registry, since this
// language has no separate builtin-call opcode: natives are just values
// reachable through the normal global/Call machinery.
package natives

import (
	"fmt"
	"time"

	"loxvm/value"
)

// Clock returns the number of seconds since the Unix epoch, as a number.
// It is the one native every conformance fixture can call without
// depending on any external library, matching the teacher's pattern of
// giving every builtin registry a trivial always-available entry.
func Clock(_ []value.Value) (value.Value, error) {
	return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
}

func argString(args []value.Value, i int, fnName string) (string, error) {
	if i >= len(args) || !args[i].IsString() {
		return "", fmt.Errorf("%s() requires string arguments", fnName)
	}
	return args[i].AsString(), nil
}

// Install returns the name -> native-value pairs the VM binds into its
// global table before running any user code.
func Install(interner *value.Interner) map[string]value.Value {
	return map[string]value.Value{
		"clock": value.Obj(&value.Native{Name: "clock", Fn: Clock}),
		"crypt": value.Obj(&value.Native{Name: "crypt", Fn: crypt(interner)}),
		"hash":  value.Obj(&value.Native{Name: "hash", Fn: hash(interner)}),
	}
}
