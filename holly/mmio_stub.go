//go:build !naomi

package holly

import "github.com/naomigo/naomi/holly/cpu"

// MMIO returns the Region of size bytes at physical address addr. Only
// available when building for the target with the naomi build tag.
func MMIO(addr cpu.Addr, size int) Region { panic("holly: not on Naomi") }
