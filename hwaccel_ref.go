// hwaccel_ref.go - Unaccelerated stubs.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Only the portable reference implementation is currently provided;
// accelerated variants register themselves here.
func initHardwareAcceleration() {
	forceDisableHardwareAcceleration()
}
