// Copyright 2016 The Gotok Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys collects the physical constants and unit-conversion factors
// used throughout the transport equations. Keeping them here, instead of as
// scattered literals, makes the unit conversions auditable: temperatures are
// always eV, densities m⁻³, magnetic fields Tesla, and source power
// densities MW/m³ at the model boundary.
package phys

import "math"

// fundamental constants [SI]
const (
	Qe   = 1.602176634e-19  // elementary charge [C]
	Me   = 9.1093837015e-31 // electron mass [kg]
	Mp   = 1.67262192e-27   // proton mass [kg]
	Amu  = 1.66053906660e-27 // atomic mass unit [kg]
	Mu0  = 4e-7 * math.Pi   // vacuum permeability [H/m]
	Eps0 = 8.8541878128e-12 // vacuum permittivity [F/m]
)

// derived masses
const (
	Md = 2.0141 * Amu // deuteron mass [kg]
	Mt = 3.0160 * Amu // triton mass [kg]
)

// unit conversions
const (
	// MW2EVS converts a power density in MW/m³ to eV/(m³·s), i.e. the rate
	// of change of (n·T) used internally by the energy equations:
	// 1 MW/m³ = 1e6 W/m³ = 1e6/Qe eV/(m³·s). The factor is ≈6.24e24, large
	// enough that the conversion must be carried in double precision.
	MW2EVS = 1e6 / Qe

	// KeV is one keV in eV
	KeV = 1e3
)

// Coulomb logarithm clamp range. Formulas for lnΛ below are slowly varying;
// values outside this range indicate unphysical inputs and are clipped.
const (
	ClogMin = 5.0
	ClogMax = 20.0
)

// ClogEE returns the electron-electron Coulomb logarithm given electron
// density ne [m⁻³] and electron temperature Te [eV], clamped to
// [ClogMin, ClogMax]
func ClogEE(ne, te float64) float64 {
	if ne <= 0 || te <= 0 {
		return ClogMin
	}
	c := 31.3 - math.Log(math.Sqrt(ne)/te)
	return Clamp(c, ClogMin, ClogMax)
}

// ClogII returns the ion-ion Coulomb logarithm given ion density ni [m⁻³]
// and ion temperature Ti [eV], clamped to [ClogMin, ClogMax]
func ClogII(ni, ti float64) float64 {
	if ni <= 0 || ti <= 0 {
		return ClogMin
	}
	c := 30.0 - math.Log(math.Pow(ni, 0.5)/math.Pow(ti, 1.5))
	return Clamp(c, ClogMin, ClogMax)
}

// TauE returns the electron collision time [s] given ne [m⁻³], Te [eV] and
// effective charge zeff
func TauE(ne, te, zeff float64) float64 {
	clog := ClogEE(ne, te)
	teJ := te * Qe
	return 12.0 * math.Pow(math.Pi, 1.5) * Eps0 * Eps0 * math.Sqrt(Me) * math.Pow(teJ, 1.5) /
		(math.Sqrt(2.0) * ne * zeff * math.Pow(Qe, 4) * clog)
}

// Clamp clips x to the range [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
