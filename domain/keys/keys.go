package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxAsset is used for prefixing asset cache keys
	PfxAsset = "asset"
	// PfxAssetFeed is used for prefixing the asset feed cache key
	PfxAssetFeed = "assetFeed"
	// PfxCreator is used for prefixing creator cache keys
	PfxCreator = "creator"
	// PfxPending is used for prefixing pending verification records
	PfxPending = "pendingVerification"
)

const (
	// KeyCreatorId is the local store key holding the viewer's creator id
	KeyCreatorId = "arbifans_creator_id"
	// KeyUnlockedAssets is the local store key holding the unlocked asset ids
	KeyUnlockedAssets = "arbifans_unlocked_assets"
	// KeyPendingVerifications is the local store key holding payments whose
	// backend verification has not succeeded yet
	KeyPendingVerifications = "arbifans_pending_verifications"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
