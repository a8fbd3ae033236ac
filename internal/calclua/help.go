package calclua

import (
	"fmt"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// stringify renders a Lua value for log output. Tables print as {k=v, ...} with keys
// sorted, sequences as {v1, v2, ...}.
func stringify(v lua.LValue) string {
	var b strings.Builder
	writeLuaValue(&b, v, make(map[*lua.LTable]bool))
	return b.String()
}

func writeLuaValue(b *strings.Builder, value lua.LValue, visited map[*lua.LTable]bool) {
	switch v := value.(type) {
	case *lua.LNilType:
		b.WriteString("nil")
	case lua.LBool, lua.LNumber:
		b.WriteString(v.String())
	case lua.LString:
		b.WriteString(string(v))
	case *lua.LTable:
		if visited[v] {
			b.WriteString("{...}")
			return
		}
		visited[v] = true
		defer delete(visited, v)

		b.WriteByte('{')
		n := v.Len()
		for i := 1; i <= n; i++ {
			if i > 1 {
				b.WriteString(", ")
			}
			writeLuaValue(b, v.RawGetInt(i), visited)
		}
		var keys []string
		fields := make(map[string]lua.LValue)
		v.ForEach(func(k, x lua.LValue) {
			if i, ok := k.(lua.LNumber); ok && float64(i) == float64(int(i)) && int(i) >= 1 && int(i) <= n {
				return
			}
			s := fmt.Sprint(k)
			keys = append(keys, s)
			fields[s] = x
		})
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 || n > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteByte('=')
			writeLuaValue(b, fields[k], visited)
		}
		b.WriteByte('}')
	default:
		b.WriteString(value.Type().String())
	}
}
