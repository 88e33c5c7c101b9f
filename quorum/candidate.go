package quorum

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/log"
)

// Candidate is a trigger competing to pay a superblock.
type Candidate struct {
	Object      *types.GovernanceObject
	Payload     *contract.Payload
	Fingerprint types.Hash32
}

// Votes is the net count of funding votes.
func (c *Candidate) Votes() int {
	return c.Object.AbsoluteYes()
}

func (c *Candidate) String() string {
	return fmt.Sprintf("gov=%s,pam=%s,votes=%d", c.Object.Hash.Hex(), c.Fingerprint.Hex(), c.Votes())
}

// Candidates returns well-formed triggers for height ordered by object hash.
func (s *Sanctuary) Candidates(ctx context.Context, height types.Height) ([]*Candidate, error) {
	objs, err := s.store.AllNewerThan(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("list governance objects: %w", err)
	}
	var rst []*Candidate
	for _, obj := range objs {
		if obj.Type != types.TriggerObject {
			continue
		}
		payload, err := contract.DecodePayload(obj.Data)
		if err != nil {
			invalidTriggers.Inc()
			s.logger.Debug("skipping malformed trigger",
				log.ZShortStringer("object", obj.Hash),
				zap.Error(err),
			)
			continue
		}
		if payload.EventBlockHeight != height {
			continue
		}
		rst = append(rst, &Candidate{
			Object:      obj,
			Payload:     payload,
			Fingerprint: payload.Fingerprint(),
		})
	}
	slices.SortFunc(rst, func(a, b *Candidate) int {
		return a.Object.Hash.Compare(b.Object.Hash)
	})
	return rst, nil
}

// leading returns the candidate with the most votes among those carrying
// fingerprint fp, or among all candidates when fp is empty. Ties keep the
// lowest object hash.
func leading(candidates []*Candidate, fp types.Hash32) *Candidate {
	var best *Candidate
	for _, cand := range candidates {
		if !fp.Empty() && cand.Fingerprint != fp {
			continue
		}
		if best == nil || cand.Votes() > best.Votes() {
			best = cand
		}
	}
	return best
}

// Lowest returns the candidate with the lowest object hash among those
// carrying fingerprint fp. candidates must be ordered by hash.
func Lowest(candidates []*Candidate, fp types.Hash32) *Candidate {
	for _, cand := range candidates {
		if cand.Fingerprint == fp {
			return cand
		}
	}
	return nil
}

// Pending lists the triggers for height carrying payments with fingerprint fp.
// An empty fp lists all triggers for height.
func (c *Controller) Pending(ctx context.Context, height types.Height, fp types.Hash32) ([]*Candidate, error) {
	candidates, err := c.sanctuary.Candidates(ctx, height)
	if err != nil || fp.Empty() {
		return candidates, err
	}
	return slices.DeleteFunc(candidates, func(cand *Candidate) bool {
		return cand.Fingerprint != fp
	}), nil
}
