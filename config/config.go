// This file is part of VirtualC64.
//
// VirtualC64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VirtualC64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// Package config holds the closed set of runtime-configurable options the
// emulation core accepts through the CONFIG/CONFIG_ALL/CONFIG_SCHEME
// commands. It deliberately does not persist anything to disk - the
// teacher's prefs package does that for its own preferences, but an on-disk
// format is a host-facade concern here, so only the in-memory
// option/value/apply layer is carried over.
package config

import (
	"fmt"

	"github.com/vc64/core/errors"
)

// Option identifies one configurable knob. Each maps to exactly one Value
// variant and one effect, documented alongside the component it configures.
type Option int

const (
	PowerGrid Option = iota
	CIARevision
	VICRevision
	VICGlueLogic
	SIDRevision
	SIDSampling
	DriveConnect
	DriveType
)

func (o Option) String() string {
	switch o {
	case PowerGrid:
		return "POWER_GRID"
	case CIARevision:
		return "CIA_REVISION"
	case VICRevision:
		return "VIC_REVISION"
	case VICGlueLogic:
		return "VIC_GLUE_LOGIC"
	case SIDRevision:
		return "SID_REVISION"
	case SIDSampling:
		return "SID_SAMPLING"
	case DriveConnect:
		return "DRV_CONNECT"
	case DriveType:
		return "DRV_TYPE"
	}
	return "UNKNOWN_OPTION"
}

// PowerGridValue is the set of values accepted for the PowerGrid option.
type PowerGridValue int

const (
	Stable50Hz PowerGridValue = iota
	Unstable50Hz
	Stable60Hz
	Unstable60Hz
)

// CIARevisionValue is the set of values accepted for the CIARevision option.
type CIARevisionValue int

const (
	MOS6526 CIARevisionValue = iota
	MOS8521
)

// VICRevisionValue is the set of values accepted for the VICRevision option.
type VICRevisionValue int

const (
	PAL6569R1 VICRevisionValue = iota
	PAL6569R3
	PAL8565
	NTSC6567
	NTSC6567R56A
	NTSC8562
)

// VICGlueLogicValue is the set of values accepted for the VICGlueLogic option.
type VICGlueLogicValue int

const (
	GlueDiscrete VICGlueLogicValue = iota
	GlueIC
)

// SIDRevisionValue is the set of values accepted for the SIDRevision option.
type SIDRevisionValue int

const (
	MOS6581 SIDRevisionValue = iota
	MOS8580
)

// SIDSamplingValue is the set of values accepted for the SIDSampling option.
type SIDSamplingValue int

const (
	SamplingFast SIDSamplingValue = iota
	SamplingInterpolate
	SamplingResample
	SamplingResampleFastmem
)

// DriveTypeValue is the set of values accepted for the DriveType option.
type DriveTypeValue int

const (
	VC1541 DriveTypeValue = iota
	VC1541C
	VC1541II
)

// Value is the closed set of value kinds a Config holds; exactly one field
// is meaningful, selected by the paired Option.
type Value struct {
	PowerGrid    PowerGridValue
	CIARevision  CIARevisionValue
	VICRevision  VICRevisionValue
	VICGlueLogic VICGlueLogicValue
	SIDRevision  SIDRevisionValue
	SIDSampling  SIDSamplingValue
	DriveConnect bool
	DriveType    DriveTypeValue
}

// Config is the live set of applied options for one machine instance, one
// per drive unit where the option is per-drive (DriveConnect, DriveType).
type Config struct {
	PowerGrid    PowerGridValue
	CIARevision  CIARevisionValue
	VICRevision  VICRevisionValue
	VICGlueLogic VICGlueLogicValue
	SIDRevision  SIDRevisionValue
	SIDSampling  SIDSamplingValue
	DriveConnect [2]bool
	DriveType    [2]DriveTypeValue
}

// Default returns the configuration of a stock PAL C64 with one drive
// attached.
func Default() Config {
	return Config{
		PowerGrid:    Stable50Hz,
		CIARevision:  MOS6526,
		VICRevision:  PAL6569R3,
		VICGlueLogic: GlueDiscrete,
		SIDRevision:  MOS6581,
		SIDSampling:  SamplingResample,
		DriveConnect: [2]bool{true, false},
		DriveType:    [2]DriveTypeValue{VC1541II, VC1541II},
	}
}

// Apply validates and applies a single option/value pair to a drive unit id
// (ignored for machine-wide options). It never partially applies: either
// the whole option is valid and is stored, or an error is returned and cfg
// is untouched.
func (cfg *Config) Apply(opt Option, id int, v Value) error {
	switch opt {
	case PowerGrid:
		cfg.PowerGrid = v.PowerGrid
	case CIARevision:
		cfg.CIARevision = v.CIARevision
	case VICRevision:
		cfg.VICRevision = v.VICRevision
	case VICGlueLogic:
		cfg.VICGlueLogic = v.VICGlueLogic
	case SIDRevision:
		cfg.SIDRevision = v.SIDRevision
	case SIDSampling:
		cfg.SIDSampling = v.SIDSampling
	case DriveConnect:
		if id < 0 || id > 1 {
			return errors.Newf(errors.ConfigInvalidValue, errors.ConfigInvalidValueMsg, opt, id)
		}
		cfg.DriveConnect[id] = v.DriveConnect
	case DriveType:
		if id < 0 || id > 1 {
			return errors.Newf(errors.ConfigInvalidValue, errors.ConfigInvalidValueMsg, opt, id)
		}
		cfg.DriveType[id] = v.DriveType
	default:
		return errors.Newf(errors.ConfigUnknownOption, errors.ConfigUnknownOptionMsg, opt)
	}
	return nil
}

// ApplyAll applies the same option/value to both drive units (CONFIG_ALL),
// or to the machine-wide option once if it isn't per-drive.
func (cfg *Config) ApplyAll(opt Option, v Value) error {
	switch opt {
	case DriveConnect, DriveType:
		if err := cfg.Apply(opt, 0, v); err != nil {
			return err
		}
		return cfg.Apply(opt, 1, v)
	default:
		return cfg.Apply(opt, 0, v)
	}
}

// Scheme is a named bundle of option values applied together
// (CONFIG_SCHEME), e.g. "c64_pal" or "c64_ntsc".
type Scheme string

const (
	SchemePAL  Scheme = "c64_pal"
	SchemeNTSC Scheme = "c64_ntsc"
)

// ApplyScheme sets every option to the values that define a named hardware
// configuration.
func (cfg *Config) ApplyScheme(s Scheme) error {
	switch s {
	case SchemePAL:
		cfg.VICRevision = PAL6569R3
		cfg.PowerGrid = Stable50Hz
	case SchemeNTSC:
		cfg.VICRevision = NTSC6567
		cfg.PowerGrid = Stable60Hz
	default:
		return errors.Newf(errors.ConfigUnknownOption, errors.ConfigUnknownOptionMsg, fmt.Sprintf("scheme %q", s))
	}
	return nil
}
