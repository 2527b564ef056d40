// Package handid generates identifiers for saved hands: a UUIDv7
// encoded as 26 characters of Crockford base32. The embedded
// millisecond timestamp keeps hand logs sortable by creation time.
package handid

import (
	"crypto/rand"
	"fmt"

	"github.com/coder/quartz"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator produces hand IDs. The clock and random source are
// injectable for deterministic tests.
type Generator struct {
	clock quartz.Clock
	read  func([]byte) (int, error)
}

// NewGenerator returns a production generator on the real clock and
// crypto/rand.
func NewGenerator() *Generator {
	return &Generator{clock: quartz.NewReal(), read: rand.Read}
}

// NewGeneratorWith returns a generator on the given clock and random
// byte source.
func NewGeneratorWith(clock quartz.Clock, read func([]byte) (int, error)) *Generator {
	return &Generator{clock: clock, read: read}
}

// Generate returns a fresh hand ID.
func (g *Generator) Generate() string {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then version 7 and variant bits
	// over random filler.
	now := g.clock.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if _, err := g.read(uuid[6:]); err != nil {
		panic("handid: reading random bytes: " + err.Error())
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encodeBase32(uuid)
}

// encodeBase32 packs the 128 bits into 26 base32 characters, five bits
// per character, most significant first.
func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)
	for i := range result {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}
	return string(result)
}

// Validate checks that id is a well-formed hand ID.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("hand ID must be 26 characters, got %d", len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i, ch := range id {
		if !validChar(byte(ch)) {
			return fmt.Errorf("hand ID has invalid character %c at position %d", ch, i)
		}
	}
	return nil
}

func validChar(ch byte) bool {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == ch {
			return true
		}
	}
	return false
}
