package task

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Family prefixes for task identifiers. The prefix makes the owning
// endpoint family visible in logs and result URLs.
const (
	PrefixSemanticDiff    = "diff_"
	PrefixSummary         = "summary_"
	PrefixCLOPLOCheck     = "clo_plo_"
	PrefixRelationExtract = "relation_"
	PrefixOCR             = "ocr_"
	PrefixOCRUpload       = "ocr_upload_"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 24

// FingerprintID derives a deterministic task identifier from the
// submission content: a family prefix plus a truncated sha256 of the
// canonical JSON encoding of the input. Resubmitting identical content
// yields the same id across processes and restarts.
func FingerprintID(prefix string, input any) (string, error) {
	canonical, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize task input: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return prefix + hex.EncodeToString(sum[:])[:fingerprintLen], nil
}

// FingerprintBytes derives a task identifier directly from raw bytes,
// used for file uploads where no canonical JSON form exists. Only the
// leading window of the content participates, matching the submission
// contract for large files.
func FingerprintBytes(prefix string, content []byte) string {
	const window = 4096
	if len(content) > window {
		content = content[:window]
	}
	sum := sha256.Sum256(content)
	return prefix + hex.EncodeToString(sum[:])[:fingerprintLen]
}
