package harness

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	PeerPlaceholder = "{peer}"

	// DefaultPeerPath is where each peer implementation keeps its records,
	// relative to the directory of the implementation doing the comparison.
	DefaultPeerPath = "../" + PeerPlaceholder + "/values-" + PeerPlaceholder + ".txt"
	// DefaultOutput is the file this implementation generates, following the same convention.
	DefaultOutput = "./values-go.txt"
)

var isPeer = regexp.MustCompile(`^[a-zA-Z]+$`).MatchString

// PeerPath resolves the records file of peer from pattern. The peer name is
// lower-cased and substituted for every {peer} in pattern.
func PeerPath(pattern, peer string) (string, error) {
	if !isPeer(peer) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeer, peer)
	}
	if !strings.Contains(pattern, PeerPlaceholder) {
		return "", fmt.Errorf("%w: %q", ErrMissingPlaceholder, pattern)
	}
	return strings.ReplaceAll(pattern, PeerPlaceholder, strings.ToLower(peer)), nil
}
