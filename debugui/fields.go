package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	Name  string
	Index int
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// fieldsOf returns the exported fields of the struct type t.
func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, fieldInfo{Name: f.Name, Index: i})
			}
		}
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]fieldInfo)
}
