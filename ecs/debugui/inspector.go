package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
)

// FieldInfo describes one exported struct field the inspector can show.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func (fc *fieldCache) get(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

// ExportedFields lists the exported fields of struct type t.
func ExportedFields(t reflect.Type) []FieldInfo {
	return cache.get(t)
}

var cache = &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}

// SingletonInspector shows every singleton in storage. Float fields can be
// edited in place, everything else is read-only.
type SingletonInspector struct {
	storage *ecs.Storage
	skip    map[reflect.Type]bool
}

// NewSingletonInspector creates an inspector over storage. Types listed in
// skip are left out, which is useful for backends and window lists.
func NewSingletonInspector(storage *ecs.Storage, skip ...reflect.Type) *SingletonInspector {
	si := &SingletonInspector{storage: storage, skip: make(map[reflect.Type]bool)}
	for _, t := range skip {
		si.skip[t] = true
	}
	return si
}

func (si *SingletonInspector) Render() {
	if !imgui.BeginV("Singletons", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for compType, value := range si.storage.Singletons() {
		if si.skip[compType] {
			continue
		}
		if imgui.TreeNodeStr(compType.String()) {
			renderStruct(compType.String(), value)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func renderStruct(id string, val reflect.Value) {
	for _, field := range ExportedFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderField(id+"."+field.Name, field.Name, fieldVal)
	}
}

func renderField(id, name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat("##"+id, &v) && val.CanSet() && v > 0 {
			val.SetFloat(float64(v))
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderStruct(id, val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(name + ": <unexported>")
		}
	}
}
