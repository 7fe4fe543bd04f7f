// Package frame implements the wire format of the gyro link.
package frame

// The link carries fixed 15-byte frames over a BLE UART bridge:
//
//	offset 0   marker byte '!' (0x21)
//	offset 1   marker byte 'G' (0x47)
//	offset 2   payload, 12 bytes (3 little-endian binary32 values)
//	offset 14  checksum, bitwise complement of sum of bytes 0-13 mod 256
//
// The stream has no length escaping and no acknowledgement. Recovery
// from corruption or byte loss relies entirely on rescanning for the
// two-byte marker; a misaligned 15-byte block is caught by the
// checksum and dropped.
//
// Producer: rover-side gyro firmware
// Consumer: gyrolink daemon
