// Package store persists the minimal resumable session state: which
// pattern is selected and whether the simulation is paused. The record is
// a fixed little-endian frame guarded by a CRC-32, so a torn write is
// rejected at load time instead of surfacing as garbage state.
package store

import (
	"encoding/binary"
	"hash/crc32"
)

// Storage is the non-volatile collaborator. Implementations decide where
// the bytes live (a flash page, an EEPROM region, a state file).
type Storage interface {
	WriteBytes(key string, data []byte) error
	ReadBytes(key string) ([]byte, error)
}

// Record is the persisted session state. The generation counter is
// deliberately absent; resuming a pattern at generation zero is acceptable
// after a power cycle.
type Record struct {
	PatternIndex uint8
	Paused       bool
}

const (
	recordMagic   = uint16(0x4C42) // "BL"
	recordVersion = uint8(1)
	recordSize    = 9
)

// Store reads and writes Records through a Storage collaborator.
type Store struct {
	storage Storage
	key     string
}

// New binds a store to a storage backend under the given key.
func New(storage Storage, key string) *Store {
	return &Store{storage: storage, key: key}
}

// Save overwrites the stored record. Failures are returned for the caller
// to log; they never leave a previous valid record half-replaced as far as
// Load is concerned, because Load verifies the checksum.
func (s *Store) Save(r Record) error {
	return s.storage.WriteBytes(s.key, encode(r))
}

// Load returns the last valid record. The second result is false when no
// record exists or the stored bytes fail validation.
func (s *Store) Load() (Record, bool) {
	data, err := s.storage.ReadBytes(s.key)
	if err != nil {
		return Record{}, false
	}
	return decode(data)
}

func encode(r Record) []byte {
	buf := make([]byte, recordSize)
	binary.LittleEndian.PutUint16(buf[0:2], recordMagic)
	buf[2] = recordVersion
	buf[3] = r.PatternIndex
	if r.Paused {
		buf[4] = 1
	}
	binary.LittleEndian.PutUint32(buf[5:9], crc32.ChecksumIEEE(buf[:5]))
	return buf
}

func decode(data []byte) (Record, bool) {
	if len(data) != recordSize {
		return Record{}, false
	}
	if binary.LittleEndian.Uint16(data[0:2]) != recordMagic {
		return Record{}, false
	}
	if data[2] != recordVersion {
		return Record{}, false
	}
	if binary.LittleEndian.Uint32(data[5:9]) != crc32.ChecksumIEEE(data[:5]) {
		return Record{}, false
	}
	if data[4] > 1 {
		return Record{}, false
	}
	return Record{PatternIndex: data[3], Paused: data[4] == 1}, true
}
