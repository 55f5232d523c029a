package ast

import "reflect"

var posType = reflect.TypeOf(Pos{})

// ClearPositions zeroes every Pos field reachable from n, in place. Parser
// output carries real positions while builder-constructed trees do not;
// clearing them lets tests compare the two shapes directly.
func ClearPositions(n Node) {
	if n == nil {
		return
	}
	clearValue(reflect.ValueOf(n), make(map[uintptr]struct{}))
}

func clearValue(val reflect.Value, visited map[uintptr]struct{}) {
	if !val.IsValid() {
		return
	}
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return
		}
		ptr := val.Pointer()
		if _, ok := visited[ptr]; ok {
			return
		}
		visited[ptr] = struct{}{}
		clearValue(val.Elem(), visited)
	case reflect.Interface:
		if val.IsNil() {
			return
		}
		clearValue(val.Elem(), visited)
	case reflect.Struct:
		if val.Type() == posType {
			if val.CanSet() {
				val.Set(reflect.Zero(posType))
			}
			return
		}
		for i := 0; i < val.NumField(); i++ {
			clearValue(val.Field(i), visited)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			clearValue(val.Index(i), visited)
		}
	}
}
