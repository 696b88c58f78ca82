// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package cashaddr implements decoding and encoding of cash address strings.

A cash address is an optional network prefix, the ':' separator, and a data
part written with the 32 characters "qpzry9x8gf2tvdw0s3jn54khce6mua7l". The
last 8 characters of the data part are a 40-bit BCH checksum computed over the
low 5 bits of every prefix character, a zero, and the payload. Because the
prefix is part of the checksum, the same hash encodes to different strings for
different networks, and a string only verifies for the prefix it was made for.

The payload is a version byte followed by a hash. The version byte carries the
address type in bits 3-6 and the hash size in bits 0-2; bit 7 is reserved.

Decoding is driven by Params so one decoder serves every network and asset
class:

	payload, err := cashaddr.Decode(addr, cashaddr.NewParams("ecash"))
*/
package cashaddr
