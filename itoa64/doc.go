// Package itoa64 implements the 64-character encoding shared by
// crypt(3)-style password schemes, including the portable PHP password
// hashing framework verified by the phpass package.
//
// The alphabet is
//
//	./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
//
// ordered by ASCII value, so a character's position doubles as its 6-bit
// value. Unlike RFC 4648 base64, input is consumed little-endian: the
// first output character carries the lowest six bits of the first input
// byte. There is no padding. A trailing pair of bytes encodes to three
// characters and a trailing single byte to two.
//
// The password schemes that use this encoding only ever compare encoded
// strings against each other, so the package deliberately provides no
// decoder.
package itoa64
