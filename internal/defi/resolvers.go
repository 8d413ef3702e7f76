package defi

import (
	"context"
	"strconv"
	"strings"

	"github.com/osse101/Minefut_Go/internal/domain"
	"github.com/osse101/Minefut_Go/internal/naming"
)

// Collection exposes owned card counts
type Collection interface {
	Snapshot(ctx context.Context) (map[string]int, error)
}

// PassProgress exposes season pass levels
type PassProgress interface {
	LevelProgress(ctx context.Context, passID string) (domain.LevelProgress, error)
}

// ChallengeLog exposes SBC completion
type ChallengeLog interface {
	IsCompleted(ctx context.Context, challengeID string) (bool, error)
}

// Resolvers are the ledgers dynamic event keys read from. A nil resolver
// makes its keys report 0.
type Resolvers struct {
	Collection Collection
	Passes     PassProgress
	Challenges ChallengeLog
}

// isDynamicKey reports whether key is computed instead of counted
func isDynamicKey(key string) bool {
	for _, prefix := range []string{domain.KeyPrefixOwned, domain.KeyPrefixOwnedMin, domain.KeyPrefixPassLevel, domain.KeyPrefixSBCDone} {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// resolveDynamic computes the progress of a dynamic key
func (s *service) resolveDynamic(ctx context.Context, key string) (int, error) {
	switch {
	case strings.HasPrefix(key, domain.KeyPrefixOwnedMin):
		parts := strings.SplitN(strings.TrimPrefix(key, domain.KeyPrefixOwnedMin), ":", ownedMinParts)
		if len(parts) != ownedMinParts {
			return 0, nil
		}
		rating, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, nil
		}
		owned, err := s.owns(ctx, parts[0])
		if err != nil || !owned {
			return 0, err
		}
		return boolToInt(s.catalog.Players().HasMatch(parts[0], rating, parts[2])), nil

	case strings.HasPrefix(key, domain.KeyPrefixOwned):
		owned, err := s.owns(ctx, strings.TrimPrefix(key, domain.KeyPrefixOwned))
		return boolToInt(owned), err

	case strings.HasPrefix(key, domain.KeyPrefixPassLevel):
		if s.resolvers.Passes == nil {
			return 0, nil
		}
		lp, err := s.resolvers.Passes.LevelProgress(ctx, strings.TrimPrefix(key, domain.KeyPrefixPassLevel))
		if err != nil {
			return 0, err
		}
		return lp.Level, nil

	case strings.HasPrefix(key, domain.KeyPrefixSBCDone):
		if s.resolvers.Challenges == nil {
			return 0, nil
		}
		done, err := s.resolvers.Challenges.IsCompleted(ctx, strings.TrimPrefix(key, domain.KeyPrefixSBCDone))
		return boolToInt(done), err
	}
	return 0, nil
}

// owns reports whether the collection holds name, ignoring case and accents
func (s *service) owns(ctx context.Context, name string) (bool, error) {
	if s.resolvers.Collection == nil {
		return false, nil
	}
	owned, err := s.resolvers.Collection.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	want := naming.Fold(name)
	for n, count := range owned {
		if count >= 1 && naming.Fold(n) == want {
			return true, nil
		}
	}
	return false, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
