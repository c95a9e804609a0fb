package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest — контент-хеш файла или модуля.
type Digest [32]byte

// HashBytes возвращает digest содержимого.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
