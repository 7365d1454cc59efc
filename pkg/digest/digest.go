/*
 *     Copyright 2025 The Atlas Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/opencontainers/go-digest"
)

const (
	Sha256Hash digest.Algorithm = "sha256"
)

// SHA256FromStrings returns the hex sha256 over the concatenation of values.
func SHA256FromStrings(values ...string) string {
	if len(values) == 0 {
		return ""
	}

	h := sha256.New()
	for _, value := range values {
		if _, err := h.Write([]byte(value)); err != nil {
			return ""
		}
	}

	return ToHashString(h)
}

// SHA256FromBytes returns the hex sha256 of b.
func SHA256FromBytes(b []byte) string {
	h := sha256.New()
	h.Write(b)
	return ToHashString(h)
}

// FromBytes returns the canonical "sha256:<hex>" digest of b.
func FromBytes(b []byte) digest.Digest {
	return digest.SHA256.FromBytes(b)
}

func ToHashString(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
