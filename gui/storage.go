//go:build js
// +build js

package gui

import (
	"fmt"
	"syscall/js"

	"github.com/ctessum/eeviewer/geocache"
)

// Storage is a Web Storage object such as window.sessionStorage.
type Storage struct {
	v js.Value
}

// NewStorage returns the Web Storage object name of the window.
func NewStorage(name string) (s *Storage, err error) {
	defer func() {
		// Some browsers throw when storage is disabled.
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("gui: %s unavailable: %v", name, r)
		}
	}()
	v := js.Global().Get(name)
	if v.IsUndefined() || v.IsNull() {
		return nil, fmt.Errorf("gui: %s unavailable", name)
	}
	return &Storage{v: v}, nil
}

func (s *Storage) Get(key string) (string, bool) {
	v := s.v.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

// Set stores value under key. A full storage yields
// geocache.ErrQuotaExceeded.
func (s *Storage) Set(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok && jsErr.Get("name").String() == "QuotaExceededError" {
				err = fmt.Errorf("gui: storing %s: %w", key, geocache.ErrQuotaExceeded)
				return
			}
			err = fmt.Errorf("gui: storing %s: %v", key, r)
		}
	}()
	s.v.Call("setItem", key, value)
	return nil
}

func (s *Storage) Remove(key string) { s.v.Call("removeItem", key) }
