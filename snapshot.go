/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */
package gollowmap

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot exchange format: a msgpack body (entry count followed by
// key/value pairs in ascending order) run through the configured
// compression codec and framed as one msgpack byte blob. This is a
// stream interchange format, not a storage engine: there is no
// durability or recovery story on purpose.

// Writes the entries of the map to [writer]
func (t *TreeMap[K, V]) WriteSnapshot(writer io.Writer) error {
	var body bytes.Buffer
	encoder := msgpack.NewEncoder(&body)

	if err := encoder.EncodeInt(int64(t.size)); err != nil {
		return err
	}

	itr := t.Iterator()
	for itr.MoveNext() {
		entry := itr.GetCurrent()
		if err := encoder.Encode(entry.GetKey()); err != nil {
			return err
		}
		if err := encoder.Encode(entry.GetValue()); err != nil {
			return err
		}
	}
	if err := itr.Err(); err != nil {
		return err
	}

	block := t.compression.Encode(body.Bytes())
	return msgpack.NewEncoder(writer).EncodeBytes(block)
}

// Reads a snapshot produced by WriteSnapshot back into a fresh map
// configured by [option]. The entry stream is already sorted, so the
// tree is rebuilt with the linear-time builder. A stream whose keys
// are not strictly increasing under the configured comparator is
// refused.
func ReadSnapshot[K any, V any](reader io.Reader, option *MapOption[K]) (*TreeMap[K, V], error) {
	// same fallback the constructors apply
	compression := option.compression
	if compression == nil {
		compression = NewSnappyCompression()
	}

	block, err := msgpack.NewDecoder(reader).DecodeBytes()
	if err != nil {
		return nil, err
	}

	body, err := compression.Decode(block)
	if err != nil {
		return nil, err
	}

	decoder := msgpack.NewDecoder(bytes.NewReader(body))
	count, err := decoder.DecodeInt()
	if err != nil {
		return nil, err
	}

	entries := make([]*Entry[K, V], 0, count)
	for i := 0; i < count; i++ {
		var key K
		var value V
		if err := decoder.Decode(&key); err != nil {
			return nil, err
		}
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}
		entries = append(entries, &Entry[K, V]{key: key, value: value})
	}

	return NewFromSortedWithOptions[K, V](entries, option)
}
