// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package smartpredictor

import (
	"fmt"
	"sort"
)

// Op names one predictor entry point.
type Op string

const (
	OpLoad     Op = "load"
	OpUnload   Op = "unload"
	OpPredict  Op = "predict"
	OpRegister Op = "register"
	OpSave     Op = "save"
	OpReset    Op = "reset"
	OpDelete   Op = "delete"
	OpSign     Op = "sign"
)

// Ops lists every entry point a Bridge requires, in binding order.
var Ops = []Op{OpLoad, OpUnload, OpPredict, OpRegister, OpSave, OpReset, OpDelete, OpSign}

// Built-in profile names.
const (
	ProfileAuto  = "auto"
	ProfileUnix  = "unix"
	ProfileWin64 = "win64"
	ProfileWin32 = "win32"
)

// Profile describes how one build of the SDK exports its entry points.
// SDK builds differ in a few symbol names and in what unload returns on success.
type Profile struct {
	Name     string
	Symbols  map[Op]string
	UnloadOK int32
}

// Symbol returns the exported name bound to op.
func (p Profile) Symbol(op Op) string {
	if s, ok := p.Symbols[op]; ok && s != "" {
		return s
	}
	return string(op)
}

func baseSymbols() map[Op]string {
	return map[Op]string{
		OpLoad:     "SmartPredictor_load",
		OpUnload:   "SmartPredictor_unload",
		OpPredict:  "SmartPredictor_predict_img",
		OpRegister: "SmartPredictor_regist_img",
		OpSave:     "SmartPredictor_save",
		OpReset:    "SmartPredictor_reset",
		OpDelete:   "SmartPredictor_delete",
		OpSign:     "SmartPredictor_sign",
	}
}

var profiles = map[string]func() Profile{
	ProfileUnix: func() Profile {
		return Profile{Name: ProfileUnix, Symbols: baseSymbols(), UnloadOK: 0}
	},
	ProfileWin64: func() Profile {
		s := baseSymbols()
		s[OpPredict] = "SmartPredictor_predict_img_filter"
		return Profile{Name: ProfileWin64, Symbols: s, UnloadOK: 0}
	},
	ProfileWin32: func() Profile {
		s := baseSymbols()
		s[OpPredict] = "SmartPredictor_predict_img_filter"
		s[OpUnload] = "SmartPredictor_release"
		return Profile{Name: ProfileWin32, Symbols: s, UnloadOK: 1}
	},
}

// DefaultProfile returns the profile matching the running platform.
func DefaultProfile() Profile {
	return profiles[defaultProfileName()]()
}

// LookupProfile returns the named built-in profile. "" and "auto" select
// DefaultProfile.
func LookupProfile(name string) (Profile, error) {
	if name == "" || name == ProfileAuto {
		return DefaultProfile(), nil
	}
	mk, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (known: %v)", name, ProfileNames())
	}
	return mk(), nil
}

// ProfileNames returns the built-in profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
