// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package tag

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Serialization limits.
//
const (
	SerializationBufferSize = 1024 // upper bound of a serialized stack, in bytes
	MaxNameLen              = math.MaxUint8
	headerLen               = 4
)

// ErrCorruptState is returned by UnmarshalBinary on malformed input.
//
var ErrCorruptState = errors.New("corrupt tag stack state")

// MarshalBinary encodes the stack as:
//
//	uint16 LE  number of entries in the blob
//	uint16 LE  number of entries in the stack (capped at 65535)
//	entries    1 byte kind code, and for Custom tags 1 length byte followed
//	           by at most MaxNameLen name bytes
//
// The result never exceeds SerializationBufferSize bytes. Entries that do not
// fit are left out of the blob; the stack itself is not modified.
//
func (s *Stack) MarshalBinary() ([]byte, error) {
	total := len(s.tags)
	if total > math.MaxUint16 {
		total = math.MaxUint16
	}
	b := make([]byte, headerLen, 64)
	n := 0
	for ; n < total; n++ {
		t := &s.tags[n]
		if t.Kind == Custom {
			name := t.Name
			if len(name) > MaxNameLen {
				name = name[:MaxNameLen]
			}
			if len(b)+2+len(name) >= SerializationBufferSize {
				break
			}
			b = append(b, byte(t.Kind), byte(len(name)))
			b = append(b, name...)
		} else {
			if len(b)+1 >= SerializationBufferSize {
				break
			}
			b = append(b, byte(t.Kind))
		}
	}
	binary.LittleEndian.PutUint16(b[0:], uint16(n))
	binary.LittleEndian.PutUint16(b[2:], uint16(total))
	return b, nil
}

// UnmarshalBinary replaces the content of the stack with the entries encoded
// in data. An empty data leaves the stack empty. On error, the stack is left
// empty and the error wraps ErrCorruptState.
//
func (s *Stack) UnmarshalBinary(data []byte) error {
	s.Reset()
	if len(data) == 0 {
		return nil
	}
	if len(data) < headerLen {
		return fmt.Errorf("%w: short header (%d bytes)", ErrCorruptState, len(data))
	}
	n := int(binary.LittleEndian.Uint16(data[0:]))
	total := int(binary.LittleEndian.Uint16(data[2:]))
	if n > total {
		return fmt.Errorf("%w: %d serialized entries out of %d", ErrCorruptState, n, total)
	}
	if cap(s.tags) < n {
		s.tags = make([]Tag, 0, n)
	}
	i := headerLen
	for j := 0; j < n; j++ {
		if i >= len(data) {
			s.Reset()
			return fmt.Errorf("%w: entry %d: unexpected end of data", ErrCorruptState, j)
		}
		k := Kind(data[i])
		i++
		if !k.Valid() {
			s.Reset()
			return fmt.Errorf("%w: entry %d: invalid kind code %d", ErrCorruptState, j, k)
		}
		t := Tag{Kind: k}
		if k == Custom {
			if i >= len(data) {
				s.Reset()
				return fmt.Errorf("%w: entry %d: missing name length", ErrCorruptState, j)
			}
			l := int(data[i])
			i++
			if i+l > len(data) {
				s.Reset()
				return fmt.Errorf("%w: entry %d: name overflows data", ErrCorruptState, j)
			}
			t.Name = string(data[i : i+l])
			i += l
		}
		s.tags = append(s.tags, t)
	}
	return nil
}
