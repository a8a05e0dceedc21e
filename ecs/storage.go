package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"
)

// Storage holds singleton components keyed by their type. Each singleton is
// allocated once, so pointers handed out by Singleton stay valid for the
// lifetime of the storage.
type Storage struct {
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// AddSingleton stores component as the singleton of its type. A pointer is
// dereferenced and its value copied. Adding a type that already exists
// overwrites the value in place.
func (s *Storage) AddSingleton(component any) {
	if component == nil {
		panic("cannot add nil singleton")
	}

	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			panic("cannot add nil singleton")
		}
		value = value.Elem()
	}

	compType := value.Type()
	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("singletons cannot be pointers, maps, channels, or functions")
	}

	if entry, ok := s.singletons[compType]; ok {
		entry.value.Set(value)
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(value)
	s.singletons[compType] = &singletonEntry{
		value:   ptr.Elem(),
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(compType reflect.Type) *singletonEntry {
	return s.singletons[compType]
}

// ReadSingleton fills out, which must be a **T, with a pointer to the
// singleton of type T. It reports whether the singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	compType := target.Elem().Type().Elem()
	entry := s.getSingletonEntry(compType)
	if entry == nil {
		return false
	}

	target.Elem().Set(reflect.NewAt(compType, entry.dataPtr))
	return true
}

// HasSingleton reports whether a singleton of the given type exists.
func (s *Storage) HasSingleton(compType reflect.Type) bool {
	return s.getSingletonEntry(compType) != nil
}

// GetSingleton returns the singleton of type T or nil.
func GetSingleton[T any](s *Storage) *T {
	entry := s.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Singletons yields every singleton with an addressable value, ordered by
// type name.
func (s *Storage) Singletons() iter.Seq2[reflect.Type, reflect.Value] {
	types := make([]reflect.Type, 0, len(s.singletons))
	for compType := range s.singletons {
		types = append(types, compType)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})

	return func(yield func(reflect.Type, reflect.Value) bool) {
		for _, compType := range types {
			entry, ok := s.singletons[compType]
			if !ok {
				continue
			}
			if !yield(compType, entry.value) {
				return
			}
		}
	}
}

// StorageStats summarizes what a storage holds.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
}

// CollectStats returns a snapshot of storage statistics.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		SingletonCount: len(s.singletons),
		SingletonTypes: make([]string, 0, len(s.singletons)),
	}

	for compType := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, compType.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
